package respond

import (
	"regexp"
)

var (
	// The Anthropic pattern runs first so its keys are not half-masked by the OpenAI one.
	anthropicKeyPattern = regexp.MustCompile(`sk-ant-[a-zA-Z0-9-_]+`)
	openaiKeyPattern    = regexp.MustCompile(`sk-[a-zA-Z0-9]{10,}`)

	// user:password@ in URLs
	userinfoPattern = regexp.MustCompile(`://([^:/@\s]+):([^@\s]+)@`)

	// ?api_key=..., &token=... in URLs
	queryCredentialPattern = regexp.MustCompile(`(?i)([?&](?:api[_-]?key|access[_-]?token|token|secret|password)=)[^&\s"]+`)
)

// SanitizeError returns err's message with API keys and URL credentials masked.
func SanitizeError(err error) string {
	if err == nil {
		return ""
	}

	msg := err.Error()
	msg = anthropicKeyPattern.ReplaceAllString(msg, "sk-ant-****")
	msg = openaiKeyPattern.ReplaceAllString(msg, "sk-****")
	msg = userinfoPattern.ReplaceAllString(msg, "://$1:****@")
	msg = queryCredentialPattern.ReplaceAllString(msg, "${1}****")
	return msg
}
