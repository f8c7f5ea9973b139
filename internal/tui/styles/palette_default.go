package styles

// DefaultTheme is the baseline palette.
var DefaultTheme = Theme{
	Name: "default",
	Tokens: ThemeTokens{
		Background: "#0C1117",
		Panel:      "#141B26",
		Text:       "#E8EEF4",
		TextMuted:  "#8C9BB0",
		Border:     "#24344A",
		Accent:     "#5FA8D3",
		Focus:      "#82B6F0",
		Success:    "#41B65C",
		Warning:    "#D2A022",
		Error:      "#F05252",
		Info:       "#5AA7F7",
	},
}
