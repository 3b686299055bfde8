// internal/config/config.go
package config

import "image/color"

const (
	ScreenWidth  = 800
	ScreenHeight = 600

	StartLevel = 1

	NumCities    = 6
	NumBatteries = 3
	CityY        = 570.0
	BatteryY     = 560.0
)

// Вероятность спавна ракеты за тик растёт с уровнем.
const (
	BaseSpawnRate  = 0.02
	LevelSpawnRate = 0.005

	BaseRocketSpeed = 0.002 // прогресс за тик
	SpeedJitter     = 0.002
	LevelSpeedRate  = 0.0005

	MissileSpeed = 0.02

	ImpactTolerance = 20.0 // горизонтальный допуск попадания ракеты
	SpreadOffsetX   = 25.0 // разброс тройного выстрела по X
	BatteryAmmo     = 30   // только для отображения, стрельбу не ограничивает
)

const (
	StandardExplosionRadius = 40.0
	GravityRadiusFactor     = 2.0 // множитель макс. радиуса гравитационной бомбы
	SecondaryRadiusFactor   = 0.8 // вторичный взрыв при уничтожении ракеты

	ExplosionGrowthRate = 0.08 // доля maxRadius за тик
	ExplosionDecayRate  = 0.05

	GravityPullConstant = 3.0
)

const (
	RocketKillScore  = 100
	WinScorePerLevel = 1000
)

// Сетка косметических взрывов для AreaClear.
const (
	AreaClearRadius   = 60.0
	AreaClearCols     = 5
	AreaClearRows     = 4
	AreaClearSpacingX = 160.0
	AreaClearSpacingY = 150.0
	AreaClearOriginX  = 80.0
	AreaClearOriginY  = 75.0
)

var (
	BackgroundColor  = color.RGBA{10, 10, 25, 255}
	CityColor        = color.RGBA{70, 170, 255, 255}
	CityRuinColor    = color.RGBA{60, 60, 70, 255}
	BatteryColor     = color.RGBA{90, 220, 120, 255}
	BatteryRuinColor = color.RGBA{80, 70, 60, 255}
	RocketColor      = color.RGBA{255, 70, 70, 255}
	MissileColor     = color.RGBA{240, 240, 120, 255}
	ExplosionColor   = color.RGBA{255, 160, 40, 180}
	GravityColor     = color.RGBA{170, 90, 255, 180}
	SecondaryColor   = color.RGBA{255, 210, 90, 180}
	TextLightColor   = color.RGBA{240, 240, 240, 255}
	StatusWonColor   = color.RGBA{90, 220, 120, 255}
	StatusLostColor  = color.RGBA{220, 60, 60, 255}
	TrailColor       = color.RGBA{120, 120, 140, 90}

	CityRadius       = float32(12.0)
	BatteryRadius    = float32(10.0)
	RocketDotRadius  = float32(3.0)
	MissileDotRadius = float32(2.0)
)

// CityXPositions — фиксированная раскладка городов по нижнему краю поля.
var CityXPositions = [NumCities]float64{180, 250, 320, 480, 550, 620}

// BatteryXPositions — батареи слева, по центру и справа.
var BatteryXPositions = [NumBatteries]float64{100, 400, 700}
