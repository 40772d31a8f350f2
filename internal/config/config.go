// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 1280
	ScreenHeight = 800
	TileSize     = 32.0 // пикселей на тайл

	// Панель зданий внизу экрана
	BarHeight      = 72
	BarPadding     = 8
	BarButtonWidth = 120

	ResourceLabelX = 16
	ResourceLabelY = 16

	MenuButtonWidth  = 320
	MenuButtonHeight = 44
	MenuButtonGap    = 12

	TextCharWidth = 7
	TextOffsetY   = 4

	StrokeWidth = 2.0

	CameraPanSpeed = 8.0 // тайлов в секунду

	DefaultCatalogPath  = "assets/data/buildings.json"
	DefaultCampaignPath = "assets/levels/campaign.yaml"
	DefaultReportPath   = "grid_report.png"
)

var (
	BackgroundColor = color.RGBA{20, 20, 30, 255}
	TextLightColor  = color.RGBA{240, 240, 240, 255}
	TextDarkColor   = color.RGBA{20, 20, 30, 255}

	// Тайлы местности
	GroundColor  = color.RGBA{86, 125, 70, 255}
	BlockedColor = color.RGBA{60, 60, 70, 255}
	WoodColor    = color.RGBA{34, 85, 34, 255}
	HillTint     = color.RGBA{255, 255, 255, 30}
	GoalColor    = color.RGBA{255, 215, 0, 255}

	// Подсветка при размещении
	BuildableOverlay = color.RGBA{70, 130, 180, 90}
	ExpandedOverlay  = color.RGBA{120, 200, 255, 120}
	DangerOverlay    = color.RGBA{220, 60, 60, 110}
	ResourceOverlay  = color.RGBA{255, 215, 0, 120}
	HoverOverlay     = color.RGBA{255, 255, 255, 60}

	GhostValidColor   = color.RGBA{50, 205, 50, 150}
	GhostInvalidColor = color.RGBA{220, 60, 60, 150}

	DefaultBuildingColor = color.RGBA{128, 128, 128, 255}
	BuildingStrokeColor  = color.RGBA{255, 255, 255, 255}

	ButtonColor         = color.RGBA{70, 130, 180, 220}
	ButtonHoverColor    = color.RGBA{100, 160, 210, 235}
	ButtonSelectedColor = color.RGBA{194, 178, 128, 255}
	ButtonDisabledColor = color.RGBA{80, 80, 90, 200}
)
