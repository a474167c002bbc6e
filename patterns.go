package main

import (
	"fmt"
	"math/rand"

	"mosaic/core"
	"mosaic/geometry"
	"mosaic/grid"
)

// fillPattern populates the mosaic's cells according to the named pattern.
// "blank" leaves every cell unset so the whole grid shows the default color.
func fillPattern(m *grid.Mosaic, pattern string, seed int64) error {
	rows, cols := m.Rows(), m.Columns()

	switch pattern {
	case "blank":

	case "random":
		rng := rand.New(rand.NewSource(seed))
		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				m.SetRGB(row, col, rng.Float64(), rng.Float64(), rng.Float64())
			}
		}

	case "checker":
		// Alternate cells stay unset, so the default color shows through.
		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				if (row+col)%2 == 0 {
					m.SetColor(row, col, core.White)
				}
			}
		}

	case "gradient":
		rowSpan := float64(geometry.Max(rows-1, 1))
		colSpan := float64(geometry.Max(cols-1, 1))
		for row := 0; row < rows; row++ {
			for col := 0; col < cols; col++ {
				m.SetRGB(row, col, float64(row)/rowSpan, 0.4, float64(col)/colSpan)
			}
		}

	default:
		return fmt.Errorf("unknown pattern: %s", pattern)
	}
	return nil
}
