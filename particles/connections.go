package particles

import (
	"image/color"
	"math"
)

// Link is a line segment between two points with its stroke color
type Link struct {
	X0, Y0 float64
	X1, Y1 float64
	Color  color.NRGBA
}

// ConnectionOpacity is the link opacity factor for a pair at distance d.
func ConnectionOpacity(d, threshold float64) float64 {
	return Falloff(d, threshold)
}

// linkColor derives the stroke color for a link with opacity factor o.
func linkColor(mode OpacityMode, base color.NRGBA, o float64) color.NRGBA {
	if mode == OpacityConstant {
		return base
	}
	return withOpacity(base, o)
}

// AppendConnections appends a link for every unordered pair closer than
// cfg.ConnectionDistance. The pass checks all n(n-1)/2 pairs; callers keep n
// small through MaxParticles.
func AppendConnections(dst []Link, ps []Particle, cfg Config, pal Palette) []Link {
	for i := 0; i < len(ps); i++ {
		for j := i + 1; j < len(ps); j++ {
			dx := ps[i].X - ps[j].X
			dy := ps[i].Y - ps[j].Y
			distance := math.Sqrt(dx*dx + dy*dy)
			if distance >= cfg.ConnectionDistance {
				continue
			}
			o := ConnectionOpacity(distance, cfg.ConnectionDistance)
			dst = append(dst, Link{
				X0: ps[i].X, Y0: ps[i].Y,
				X1: ps[j].X, Y1: ps[j].Y,
				Color: linkColor(cfg.Opacity, pal.Connection, o),
			})
		}
	}
	return dst
}

// AppendPointerLinks appends a link from every particle inside the influence
// radius to the pointer. Nothing is added for an inactive pointer.
func AppendPointerLinks(dst []Link, ps []Particle, pointer Pointer, cfg Config, pal Palette) []Link {
	if !pointer.Active {
		return dst
	}
	for i := range ps {
		distance := ps[i].DistanceTo(pointer.X, pointer.Y)
		if distance >= cfg.InfluenceRadius {
			continue
		}
		o := PointerBoost * Falloff(distance, cfg.InfluenceRadius)
		dst = append(dst, Link{
			X0: ps[i].X, Y0: ps[i].Y,
			X1: pointer.X, Y1: pointer.Y,
			Color: linkColor(cfg.Opacity, pal.Connection, o),
		})
	}
	return dst
}
