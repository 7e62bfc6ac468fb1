package theme

// Dark is the dark base theme.
var Dark = Theme{
	Mode: ModeDark,
	Colors: Colors{
		Primary:      "#a855f7",
		PrimaryLight: "#c084fc",
		PrimaryDark:  "#8e44ad",

		Secondary:      "#60a5fa",
		SecondaryLight: "#93c5fd",
		SecondaryDark:  "#3498db",

		Background:          "#0f172a",
		BackgroundSecondary: "#1e293b",
		Card:                "#1e293b",
		CardSecondary:       "#334155",

		Text:          "#f8fafc",
		TextSecondary: "#cbd5e1",
		TextTertiary:  "#94a3b8",

		Border:      "#334155",
		BorderLight: "#475569",

		Success: "#4ade80",
		Warning: "#fbbf24",
		Error:   "#f87171",
		Overlay: "rgba(0, 0, 0, 0.7)",
	},
	Gradients: Gradients{
		Primary:    []string{"#7c3aed", "#581c87"},
		Secondary:  []string{"#2563eb", "#1e40af"},
		Background: []string{"#0f172a", "#1e293b"},
		Card:       []string{"#1e293b", "#334155"},
	},
	Spacing:      defaultSpacing,
	BorderRadius: defaultBorderRadius,
	Typography:   defaultTypography,
	Shadows:      defaultShadows,
}
