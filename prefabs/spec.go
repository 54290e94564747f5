package prefabs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/milk9111/chroma/common"
	"gopkg.in/yaml.v3"
)

func LoadSpec[T any](filename string) (T, error) {
	var zero T
	data, err := Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PlayerSpec struct {
	Name             string        `yaml:"name"`
	MoveSpeed        float64       `yaml:"move_speed"`
	JumpSpeed        float64       `yaml:"jump_speed"`
	Gravity          float64       `yaml:"gravity"`
	MaxFallSpeed     float64       `yaml:"max_fall_speed"`
	CoyoteFrames     int           `yaml:"coyote_frames"`
	JumpBufferFrames int           `yaml:"jump_buffer_frames"`
	JumpCutSpeed     float64       `yaml:"jump_cut_speed"`
	Collider         ColliderSpec  `yaml:"collider"`
	Sprite           SpriteSpec    `yaml:"sprite"`
	Animation        AnimationSpec `yaml:"animation"`
}

type CameraSpec struct {
	Name       string  `yaml:"name"`
	Smoothness float64 `yaml:"smoothness"`
}

type ItemSpec struct {
	Name         string     `yaml:"name"`
	Size         TileSize   `yaml:"size"`
	BobAmplitude float64    `yaml:"bob_amplitude"`
	BobFrames    int        `yaml:"bob_frames"`
	Sprite       SpriteSpec `yaml:"sprite"`
}

type BoxSpec struct {
	Name           string     `yaml:"name"`
	Size           TileSize   `yaml:"size"`
	MatchTolerance float64    `yaml:"match_tolerance"`
	Script         string     `yaml:"script"`
	PassableAlpha  float64    `yaml:"passable_alpha"`
	Sprite         SpriteSpec `yaml:"sprite"`
}

type PortalSpec struct {
	Name      string        `yaml:"name"`
	Size      TileSize      `yaml:"size"`
	Sprite    SpriteSpec    `yaml:"sprite"`
	Animation AnimationSpec `yaml:"animation"`
}

// GameSpec holds session-wide settings.
type GameSpec struct {
	PersistTint bool       `yaml:"persist_tint"`
	StartStage  int        `yaml:"start_stage"`
	MapColor    common.RGB `yaml:"map_color"`
	FadeFrames  int        `yaml:"fade_frames"`
	WindowScale float64    `yaml:"window_scale"`
}

type TileSize struct {
	W int `yaml:"w"`
	H int `yaml:"h"`
}

type ColliderSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type SpriteSpec struct {
	Image  string  `yaml:"image"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type AnimationSpec struct {
	FrameW int                         `yaml:"frame_w"`
	FrameH int                         `yaml:"frame_h"`
	Defs   map[string]AnimationDefSpec `yaml:"defs"`
}

type AnimationDefSpec struct {
	Row        int  `yaml:"row"`
	FrameCount int  `yaml:"frame_count"`
	FPS        int  `yaml:"fps"`
	Loop       bool `yaml:"loop"`
}

// Specs bundles every prefab the game session needs.
type Specs struct {
	Player PlayerSpec
	Camera CameraSpec
	Item   ItemSpec
	Box    BoxSpec
	Portal PortalSpec
	Game   GameSpec
}

// LoadAll loads every prefab. gameConfig optionally points at a custom game.yaml.
func LoadAll(gameConfig string) (Specs, error) {
	var (
		specs Specs
		err   error
	)
	if specs.Player, err = LoadSpec[PlayerSpec]("player.yaml"); err != nil {
		return Specs{}, err
	}
	if specs.Camera, err = LoadSpec[CameraSpec]("camera.yaml"); err != nil {
		return Specs{}, err
	}
	if specs.Item, err = LoadSpec[ItemSpec]("item.yaml"); err != nil {
		return Specs{}, err
	}
	if specs.Box, err = LoadSpec[BoxSpec]("box.yaml"); err != nil {
		return Specs{}, err
	}
	if specs.Portal, err = LoadSpec[PortalSpec]("portal.yaml"); err != nil {
		return Specs{}, err
	}
	if specs.Game, err = LoadGameSpec(gameConfig); err != nil {
		return Specs{}, err
	}
	return specs, nil
}

// LoadGameSpec resolves game.yaml.
// Search order: customPath -> ~/.chroma/game.yaml -> prefabs/game.yaml -> embedded.
func LoadGameSpec(customPath string) (GameSpec, error) {
	var spec GameSpec

	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return spec, fmt.Errorf("prefabs: read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &spec); err != nil {
			return spec, fmt.Errorf("prefabs: parse config %s: %w", customPath, err)
		}
		return spec, nil
	}

	if userPath := userConfigPath("game.yaml"); userPath != "" {
		if data, err := os.ReadFile(userPath); err == nil {
			if err := yaml.Unmarshal(data, &spec); err == nil {
				return spec, nil
			}
		}
	}

	return LoadSpec[GameSpec]("game.yaml")
}

func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".chroma", filename)
}
