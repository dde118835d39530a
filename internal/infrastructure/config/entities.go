package config

// EntitiesConfig is the root config for entities.yaml
type EntitiesConfig struct {
	Player  PlayerConfig            `json:"player" yaml:"player"`
	Enemies map[string]EnemyConfig  `json:"enemies" yaml:"enemies"`
	Pickups map[string]PickupConfig `json:"pickups" yaml:"pickups"`
	Effects map[string]EffectConfig `json:"effects" yaml:"effects"`
}

type PlayerConfig struct {
	ID     string       `json:"id" yaml:"id"`
	Sprite SpriteConfig `json:"sprite" yaml:"sprite"`
	Width  float64      `json:"width" yaml:"width"`
	Height float64      `json:"height" yaml:"height"`
	Hitbox SizeConfig   `json:"hitbox" yaml:"hitbox"`
}

type SpriteConfig struct {
	Sheet       string                     `json:"sheet" yaml:"sheet"`
	FrameWidth  int                        `json:"frameWidth" yaml:"frameWidth"`
	FrameHeight int                        `json:"frameHeight" yaml:"frameHeight"`
	Animations  map[string]AnimationConfig `json:"animations" yaml:"animations"`
}

type AnimationConfig struct {
	Row    int `json:"row" yaml:"row"`
	Frames int `json:"frames" yaml:"frames"`
}

type SizeConfig struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

// EnemyConfig describes an enemy type. Sizes are in tiles so the same
// config works for any level tile size.
type EnemyConfig struct {
	ID             string       `json:"id" yaml:"id"`
	Kind           string       `json:"kind" yaml:"kind"` // "patrol" or "flying"
	GridValue      int          `json:"gridValue" yaml:"gridValue"`
	Sprite         SpriteConfig `json:"sprite" yaml:"sprite"`
	WidthTiles     float64      `json:"widthTiles" yaml:"widthTiles"`
	HeightTiles    float64      `json:"heightTiles" yaml:"heightTiles"`
	Speed          float64      `json:"speed" yaml:"speed"`
	PatrolDistance float64      `json:"patrolDistance" yaml:"patrolDistance"`
	Amplitude      float64      `json:"amplitude" yaml:"amplitude"`
	FlightPeriod   float64      `json:"flightPeriod" yaml:"flightPeriod"`
}

type PickupConfig struct {
	ID          string       `json:"id" yaml:"id"`
	GridValue   int          `json:"gridValue" yaml:"gridValue"`
	Sprite      SpriteConfig `json:"sprite" yaml:"sprite"`
	WidthTiles  float64      `json:"widthTiles" yaml:"widthTiles"`
	HeightTiles float64      `json:"heightTiles" yaml:"heightTiles"`
}

type EffectConfig struct {
	ID     string       `json:"id" yaml:"id"`
	Sprite SpriteConfig `json:"sprite" yaml:"sprite"`
	Width  float64      `json:"width" yaml:"width"`
	Height float64      `json:"height" yaml:"height"`
}

// Frames returns the frame count of the named animation, or the first
// animation when the sprite has exactly one.
func (s SpriteConfig) Frames(name string) int {
	if a, ok := s.Animations[name]; ok {
		return a.Frames
	}
	if len(s.Animations) == 1 {
		for _, a := range s.Animations {
			return a.Frames
		}
	}
	return 1
}
