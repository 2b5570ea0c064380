package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Adaptive colors for dark/light terminals
	colorPrimary   = lipgloss.AdaptiveColor{Light: "#2563EB", Dark: "#60A5FA"}
	colorIndigo    = lipgloss.AdaptiveColor{Light: "#4F46E5", Dark: "#818CF8"}
	colorSecondary = lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#ABABAB"}
	colorText      = lipgloss.AdaptiveColor{Light: "#111827", Dark: "#E5E7EB"}
	colorDim       = lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#626262"}
	colorLike      = lipgloss.AdaptiveColor{Light: "#DC2626", Dark: "#F87171"}
	colorBorder    = lipgloss.AdaptiveColor{Light: "#DBDBDB", Dark: "#383838"}
	colorChipBg    = lipgloss.AdaptiveColor{Light: "#EEEEEE", Dark: "#2A2A3E"}
	colorStatusBg  = lipgloss.AdaptiveColor{Light: "#E8E8E8", Dark: "#16213E"}
	colorStatusFg  = lipgloss.AdaptiveColor{Light: "#3D3D3D", Dark: "#ABABAB"}
	colorGreen     = lipgloss.AdaptiveColor{Light: "#04B575", Dark: "#25D366"}

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			PaddingLeft(1)

	headerDateStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Align(lipgloss.Right)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(1, 2)

	ghostCardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder(), true, true, false, true).
			BorderForeground(colorBorder).
			Foreground(colorDim).
			PaddingLeft(1)

	cardTitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorText)

	cardSummaryStyle = lipgloss.NewStyle().
				Foreground(colorSecondary)

	cardMetaStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	tagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(colorIndigo).
			Padding(0, 1).
			Bold(true)

	categoryStyle = lipgloss.NewStyle().
			Foreground(colorGreen).
			Bold(true)

	likeHintStyle = lipgloss.NewStyle().
			Foreground(colorLike).
			Bold(true)

	dismissHintStyle = lipgloss.NewStyle().
				Foreground(colorDim).
				Bold(true)

	itemTitleStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	itemSelectedStyle = lipgloss.NewStyle().
				Foreground(colorLike).
				Bold(true)

	itemSourceStyle = lipgloss.NewStyle().
			Foreground(colorGreen)

	itemTimeStyle = lipgloss.NewStyle().
			Foreground(colorDim)

	detailTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorText).
				MarginBottom(1)

	detailSectionStyle = lipgloss.NewStyle().
				Foreground(colorIndigo).
				Bold(true)

	detailBodyStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	detailLinkStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Italic(true)

	chipActiveStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(colorPrimary).
			Padding(0, 1).
			Bold(true)

	chipAllActiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#FFFFFF")).
				Background(lipgloss.Color("#111827")).
				Padding(0, 1).
				Bold(true)

	chipInactiveStyle = lipgloss.NewStyle().
				Foreground(colorSecondary).
				Background(colorChipBg).
				Padding(0, 1)

	chipLabelStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Width(6)

	tabSeparatorStyle = lipgloss.NewStyle().
				Foreground(colorDim)

	navActiveStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true).
			Underline(true)

	navInactiveStyle = lipgloss.NewStyle().
				Foreground(colorDim)

	statusBarStyle = lipgloss.NewStyle().
			Background(colorStatusBg).
			Foreground(colorStatusFg).
			PaddingLeft(1).
			PaddingRight(1)

	overlayStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorPrimary).
			Padding(1, 3)

	avatarStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(colorIndigo).
			Padding(0, 1).
			Bold(true)

	profileNameStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(colorText)

	inputLabelStyle = lipgloss.NewStyle().
			Foreground(colorDim).
			Width(10)

	inputLabelActiveStyle = lipgloss.NewStyle().
				Foreground(colorPrimary).
				Bold(true).
				Width(10)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorLike)

	helpDimStyle = lipgloss.NewStyle().
			Foreground(colorDim)
)
