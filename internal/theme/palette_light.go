package theme

// Light is the light base theme.
var Light = Theme{
	Mode: ModeLight,
	Colors: Colors{
		Primary:      "#8e44ad",
		PrimaryLight: "#a855f7",
		PrimaryDark:  "#7c3aed",

		Secondary:      "#3498db",
		SecondaryLight: "#60a5fa",
		SecondaryDark:  "#2563eb",

		Background:          "#f8fafc",
		BackgroundSecondary: "#f1f5f9",
		Card:                "#ffffff",
		CardSecondary:       "#f8fafc",

		Text:          "#0f172a",
		TextSecondary: "#475569",
		TextTertiary:  "#64748b",

		Border:      "#e2e8f0",
		BorderLight: "#f1f5f9",

		Success: "#27ae60",
		Warning: "#f1c40f",
		Error:   "#e74c3c",
		Overlay: "rgba(0, 0, 0, 0.5)",
	},
	Gradients: Gradients{
		Primary:    []string{"#a855f7", "#7c3aed"},
		Secondary:  []string{"#60a5fa", "#2563eb"},
		Background: []string{"#f8fafc", "#f1f5f9"},
		Card:       []string{"#ffffff", "#f8fafc"},
	},
	Spacing:      defaultSpacing,
	BorderRadius: defaultBorderRadius,
	Typography:   defaultTypography,
	Shadows:      defaultShadows,
}
