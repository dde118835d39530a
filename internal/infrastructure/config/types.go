package config

// PhysicsConfig is the root config for physics.yaml
type PhysicsConfig struct {
	Display  DisplayConfig   `json:"display" yaml:"display"`
	Physics  PhysicsSettings `json:"physics" yaml:"physics"`
	Movement MovementConfig  `json:"movement" yaml:"movement"`
	Jump     JumpConfig      `json:"jump" yaml:"jump"`
	Roll     RollConfig      `json:"roll" yaml:"roll"`
	Combat   CombatConfig    `json:"combat" yaml:"combat"`
	Camera   CameraConfig    `json:"camera" yaml:"camera"`
	Timing   TimingConfig    `json:"timing" yaml:"timing"`
}

type DisplayConfig struct {
	ScreenWidth  int    `json:"screenWidth" yaml:"screenWidth"`
	ScreenHeight int    `json:"screenHeight" yaml:"screenHeight"`
	Scale        int    `json:"scale" yaml:"scale"`
	Framerate    int    `json:"framerate" yaml:"framerate"`
	Title        string `json:"title" yaml:"title"`
}

type PhysicsSettings struct {
	Gravity         float64 `json:"gravity" yaml:"gravity"`                 // px/s^2
	CollisionBuffer float64 `json:"collisionBuffer" yaml:"collisionBuffer"` // separation after a snap
}

type MovementConfig struct {
	XVelocity float64 `json:"xVelocity" yaml:"xVelocity"`
}

type JumpConfig struct {
	Power float64 `json:"power" yaml:"power"`
}

type RollConfig struct {
	Speed float64 `json:"speed" yaml:"speed"`
}

type CombatConfig struct {
	Hearts             int     `json:"hearts" yaml:"hearts"`
	InvincibleDuration float64 `json:"invincibleDuration" yaml:"invincibleDuration"`
	StompBounce        float64 `json:"stompBounce" yaml:"stompBounce"`
}

// CameraConfig selects and tunes the camera policy.
// Mode is "follow" (deadzone + lerp) or "center".
type CameraConfig struct {
	Mode         string       `json:"mode" yaml:"mode"`
	FollowLerp   float64      `json:"followLerp" yaml:"followLerp"`
	ZoomLerp     float64      `json:"zoomLerp" yaml:"zoomLerp"`
	TilesVisible float64      `json:"tilesVisible" yaml:"tilesVisible"` // 0 disables zoom
	Deadzone     DeadzoneSize `json:"deadzone" yaml:"deadzone"`
}

type DeadzoneSize struct {
	Width  float64 `json:"width" yaml:"width"`
	Height float64 `json:"height" yaml:"height"`
}

type TimingConfig struct {
	MaxDelta        float64 `json:"maxDelta" yaml:"maxDelta"`               // upper bound of a tick
	ResumeThreshold float64 `json:"resumeThreshold" yaml:"resumeThreshold"` // gap treated as a resume
	FrameInterval   float64 `json:"frameInterval" yaml:"frameInterval"`     // seconds per animation frame
}
