package styles

// HighContrastTheme favors visibility on low-contrast terminals.
var HighContrastTheme = Theme{
	Name: "high-contrast",
	Tokens: ThemeTokens{
		Background: "#000000",
		Panel:      "#101010",
		Text:       "#F5F5F5",
		TextMuted:  "#B8B8B8",
		Border:     "#E0E0E0",
		Accent:     "#3FC1FF",
		Focus:      "#FFE94A",
		Success:    "#3BE06F",
		Warning:    "#FFAA1E",
		Error:      "#FF5C5C",
		Info:       "#7FD4FF",
	},
}
