package render

// Config carries all rendering options as an explicit immutable value.
// Page geometry and fonts are fixed by the layout grammar; only the adornments
// and the currency presentation vary.
type Config struct {
	CompanyName    string
	CompanyAddress string
	CurrencySymbol string
	ShowLogo       bool
	// LogoPath is optional. A missing or unreadable logo is never a fatal
	// error: the document renders without it.
	LogoPath string
}

// DefaultConfig returns the presentation defaults for company documents.
func DefaultConfig() Config {
	return Config{
		CompanyName:    "Cable Trading Co.",
		CurrencySymbol: "Rs.",
		ShowLogo:       false,
	}
}
