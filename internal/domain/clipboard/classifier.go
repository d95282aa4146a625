package clipboard

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// MaxContentLength is the longest clipboard text, in characters, that is
// still treated as personal input rather than a bulk paste.
const MaxContentLength = 1000

// Reason explains why the Classifier rejected a piece of text.
type Reason string

const (
	ReasonNone             Reason = ""
	ReasonEmpty            Reason = "empty"
	ReasonTooLong          Reason = "too_long"
	ReasonBlockedApp       Reason = "blocked_app"
	ReasonSensitivePrefix  Reason = "sensitive_prefix"
	ReasonSensitiveKeyword Reason = "sensitive_keyword"
	ReasonHighEntropy      Reason = "high_entropy"
)

// blockedApps are password and secret managers. Matching is exact and
// case-sensitive on the localized application name.
var blockedApps = map[string]struct{}{
	"1Password":       {},
	"Keychain Access": {},
	"钥匙串访问":           {},
	"Bitwarden":       {},
	"LastPass":        {},
	"KeePassXC":       {},
	"Dashlane":        {},
	"Enpass":          {},
	"RoboForm":        {},
	"Keeper":          {},
}

// sensitivePrefixes are matched against the lowercased, trimmed text.
var sensitivePrefixes = []string{
	"sk-ant-",     // Anthropic
	"sk-",         // OpenAI, Stripe
	"sk_",         // Stripe
	"ghp_",        // GitHub personal access token
	"gho_",        // GitHub OAuth
	"ghs_",        // GitHub App
	"github_pat_", // GitHub fine-grained token
	"aig_",
	"aizasy", // Google API key
	"xai-",
	"hf_",   // Hugging Face
	"r8_",   // Replicate
	"tvly-", // Tavily
	"sess-",
	"eyj", // JWT: base64 of `{"`
}

var sensitiveKeywords = []string{
	"api_key",
	"apikey",
	"secret_key",
	"access_token",
	"bearer ",
}

const highEntropyMinLength = 32

var highEntropyPattern = regexp.MustCompile(`^[A-Za-z0-9+/=_\-]{32,}$`)

// Classifier decides whether clipboard text may be stored. It is a
// best-effort heuristic: some secrets will slip through and some harmless
// tokens will be rejected.
type Classifier struct{}

func NewClassifier() *Classifier {
	return &Classifier{}
}

// IsEligible reports whether text copied from sourceApp may be stored.
func (c *Classifier) IsEligible(text string, sourceApp *string) bool {
	return c.Classify(text, sourceApp) == ReasonNone
}

// Classify returns ReasonNone for eligible text, otherwise the first rule
// that rejected it.
func (c *Classifier) Classify(text string, sourceApp *string) Reason {
	if text == "" {
		return ReasonEmpty
	}
	if utf8.RuneCountInString(text) > MaxContentLength {
		return ReasonTooLong
	}
	if sourceApp != nil && IsBlockedApp(*sourceApp) {
		return ReasonBlockedApp
	}
	return classifySensitive(text)
}

// IsBlockedApp reports whether name is a password or secret manager.
func IsBlockedApp(name string) bool {
	_, ok := blockedApps[name]
	return ok
}

func classifySensitive(text string) Reason {
	trimmed := strings.TrimSpace(text)
	lower := cases.Lower(language.Und).String(trimmed)

	for _, p := range sensitivePrefixes {
		if strings.HasPrefix(lower, p) {
			return ReasonSensitivePrefix
		}
	}
	for _, k := range sensitiveKeywords {
		if strings.Contains(lower, k) {
			return ReasonSensitiveKeyword
		}
	}
	if utf8.RuneCountInString(trimmed) >= highEntropyMinLength && highEntropyPattern.MatchString(trimmed) {
		return ReasonHighEntropy
	}
	return ReasonNone
}
