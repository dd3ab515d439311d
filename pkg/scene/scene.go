package scene

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"sort"

	"github.com/JulianGoede/rtracer/pkg/core"
	"github.com/JulianGoede/rtracer/pkg/geometry"
	"github.com/JulianGoede/rtracer/pkg/renderer"
)

// ErrUnknownScene is returned when no scene is registered under a name
var ErrUnknownScene = errors.New("unknown scene")

// Info describes a buildable scene and the settings it was composed for
type Info struct {
	Name            string  // Identifier used by the CLI and web API
	Description     string  // One-line description for listings
	NativeAspect    float64 // Aspect ratio the scene was composed for
	Width           int     // Suggested image width in pixels
	SamplesPerPixel int     // Suggested sample budget
	MaxDepth        int     // Suggested ray bounce limit
}

// FrameSize resolves requested dimensions against the scene defaults.
// A non-positive width falls back to the scene's suggested width and a
// non-positive height is derived from the native aspect ratio. The
// returned aspect ratio always matches the returned dimensions.
func (i Info) FrameSize(width, height int) (int, int, float64) {
	if width <= 0 {
		width = i.Width
	}
	if height <= 0 {
		height = int(math.Round(float64(width) / i.NativeAspect))
		if height < 1 {
			height = 1
		}
	}
	return width, height, float64(width) / float64(height)
}

// Scene bundles the geometry, sky colors and camera placement for one
// rendered frame. It satisfies the renderer's Scene interface.
type Scene struct {
	Info         Info
	World        *geometry.World
	CameraConfig renderer.CameraConfig
	TopColor     core.Vec3
	BottomColor  core.Vec3
}

// GetWorld returns the scene geometry
func (s *Scene) GetWorld() renderer.Hittable { return s.World }

// GetBackgroundColors returns the sky gradient colors, top then bottom
func (s *Scene) GetBackgroundColors() (core.Vec3, core.Vec3) {
	return s.TopColor, s.BottomColor
}

// GetCameraConfig returns the camera placement for this scene
func (s *Scene) GetCameraConfig() renderer.CameraConfig { return s.CameraConfig }

// Builder constructs a scene for the given aspect ratio, drawing any
// procedural placement from random. A non-positive aspect ratio selects
// the scene's native aspect.
type Builder func(aspectRatio float64, random *rand.Rand) (*Scene, error)

type registration struct {
	info  Info
	build Builder
}

var registry map[string]registration

func init() {
	registry = map[string]registration{
		"default": {
			info: Info{
				Name:            "default",
				Description:     "Three spheres over a yellow ground ball",
				NativeAspect:    16.0 / 9.0,
				Width:           400,
				SamplesPerPixel: 50,
				MaxDepth:        110,
			},
			build: NewDefaultScene,
		},
		"random-spheres": {
			info: Info{
				Name:            "random-spheres",
				Description:     "Field of small random spheres around three feature balls",
				NativeAspect:    3.0 / 2.0,
				Width:           1200,
				SamplesPerPixel: 200,
				MaxDepth:        20,
			},
			build: NewRandomSpheres,
		},
	}
}

// List returns the available scenes sorted by name
func List() []Info {
	infos := make([]Info, 0, len(registry))
	for _, entry := range registry {
		infos = append(infos, entry.info)
	}
	sort.Slice(infos, func(i, j int) bool { return infos[i].Name < infos[j].Name })
	return infos
}

// Lookup returns the metadata for the named scene
func Lookup(name string) (Info, error) {
	entry, ok := registry[name]
	if !ok {
		return Info{}, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	return entry.info, nil
}

// Create builds the named scene for the given aspect ratio. Procedural
// scenes draw their layout from random; passing nil selects a fixed
// stream so repeated builds agree.
func Create(name string, aspectRatio float64, random *rand.Rand) (*Scene, error) {
	entry, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownScene, name)
	}
	if random == nil {
		random = rand.New(rand.NewSource(1))
	}
	return entry.build(aspectRatio, random)
}
