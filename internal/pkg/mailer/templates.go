package mailer

import (
	"bytes"
	htmltemplate "html/template"
	"strings"
	texttemplate "text/template"

	"github.com/piresc/flexwork/internal/pkg/models"
)

// CodePurpose selects the wording of an OTP email
type CodePurpose string

const (
	PurposeLogin  CodePurpose = "login"
	PurposeSignup CodePurpose = "signup"
)

// CodeEmail carries the data of a one-time code email
type CodeEmail struct {
	To      string
	Code    string
	Purpose CodePurpose
	Minutes int
}

// InvitationEmail carries the data of an invitation instructions email
type InvitationEmail struct {
	To          string
	CompanyName string
	Role        models.Role
	NewUser     bool
	LinkURL     string
}

type template struct {
	subject *texttemplate.Template
	html    *htmltemplate.Template
	text    *texttemplate.Template
}

func mustTemplate(name, subject, html, text string) template {
	return template{
		subject: texttemplate.Must(texttemplate.New(name + "_subject").Parse(subject)),
		html:    htmltemplate.Must(htmltemplate.New(name + "_html").Parse(html)),
		text:    texttemplate.Must(texttemplate.New(name + "_text").Parse(text)),
	}
}

func (t template) render(to string, data interface{}) (Message, error) {
	var subject, html, text bytes.Buffer
	if err := t.subject.Execute(&subject, data); err != nil {
		return Message{}, err
	}
	if err := t.html.Execute(&html, data); err != nil {
		return Message{}, err
	}
	if err := t.text.Execute(&text, data); err != nil {
		return Message{}, err
	}
	return Message{
		To:      to,
		Subject: strings.TrimSpace(subject.String()),
		HTML:    html.String(),
		Text:    text.String(),
	}, nil
}

var codeTemplate = mustTemplate("otp_code",
	`{{if eq .Purpose "signup"}}Your Flexwork verification code{{else}}Your Flexwork login code{{end}}`,
	`<p>Your {{if eq .Purpose "signup"}}verification{{else}}login{{end}} code is:</p>
<p style="font-size:24px;font-weight:bold;letter-spacing:4px">{{.Code}}</p>
<p>This code expires in {{.Minutes}} minutes. If you did not request it, you can ignore this email.</p>`,
	`Your {{if eq .Purpose "signup"}}verification{{else}}login{{end}} code is {{.Code}}.

This code expires in {{.Minutes}} minutes. If you did not request it, you can ignore this email.
`)

var invitationTemplate = mustTemplate("invitation",
	`You've been invited to join {{.CompanyName}} on Flexwork`,
	`<p>You've been added to <strong>{{.CompanyName}}</strong> as {{.Role}}.</p>
{{if .NewUser}}<p>Create your account to get started:</p>{{else}}<p>Sign in to access the workspace:</p>{{end}}
<p><a href="{{.LinkURL}}">{{if .NewUser}}Accept invitation{{else}}Open Flexwork{{end}}</a></p>`,
	`You've been added to {{.CompanyName}} as {{.Role}}.
{{if .NewUser}}Create your account to get started{{else}}Sign in to access the workspace{{end}}: {{.LinkURL}}
`)

// RenderCode builds a one-time code email
func RenderCode(data CodeEmail) (Message, error) {
	return codeTemplate.render(data.To, data)
}

// RenderInvitation builds an invitation instructions email
func RenderInvitation(data InvitationEmail) (Message, error) {
	return invitationTemplate.render(data.To, data)
}
