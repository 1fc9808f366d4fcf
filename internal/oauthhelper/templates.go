package oauthhelper

import "html/template"

const (
	tmplIndex     = "index.html"
	tmplSuccess   = "success.html"
	tmplNoRefresh = "no_refresh.html"
	tmplFailure   = "failure.html"
)

const pages = `
{{define "index.html"}}<h2>Google OAuth Refresh Token Helper</h2>
<p>1) Click the link below and complete consent.</p>
<p><a href="{{.AuthURL}}">Authorize with Google</a></p>
<p>2) After approving, you will be redirected back and the refresh token will be shown.</p>
{{end}}

{{define "success.html"}}<h2>Success</h2>
<p>Copy this refresh token into the service configuration as GOOGLE_REFRESH_TOKEN:</p>
<pre>{{.RefreshToken}}</pre>
<p>You can now close this tab.</p>
{{end}}

{{define "no_refresh.html"}}<h3>No refresh_token returned.</h3>
<p>This usually means Google did not re-issue it.</p>
<ul>
<li>Make sure prompt=consent and access_type=offline are set (this helper does).</li>
<li>Go to {{.RevokeURL}} and remove the app, then try again.</li>
</ul>
<pre>token_type: {{.TokenType}}
expiry: {{.Expiry}}
scope: {{.Scope}}</pre>
{{end}}

{{define "failure.html"}}<p>{{.Message}}</p>
{{if .Body}}<pre>{{.Body}}</pre>{{end}}
{{end}}
`

var templates = template.Must(template.New("oauthhelper").Parse(pages))
