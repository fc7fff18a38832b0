// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package brand

import (
	"math"
	"strconv"
	"strings"
)

// maxRGBDistance is the Euclidean distance between opposite corners of the
// RGB cube (#000000 vs #FFFFFF).
var maxRGBDistance = math.Sqrt(255 * 255 * 3)

// Similarity scores two hex colors on [0,1]: 1.0 for identical colors, 0.0
// for opposite extremes. The score is 1 minus the normalized Euclidean
// distance in RGB space, rounded to 3 decimal places.
//
// Malformed input (wrong length, non-hex characters) yields 0.0 rather than
// an error: similarity scoring must never abort a comparison request.
func Similarity(colorA, colorB string) float64 {
	r1, g1, b1, ok := hexToRGB(colorA)
	if !ok {
		return 0.0
	}
	r2, g2, b2, ok := hexToRGB(colorB)
	if !ok {
		return 0.0
	}

	distance := math.Sqrt(sq(r1-r2) + sq(g1-g2) + sq(b1-b2))
	similarity := 1 - distance/maxRGBDistance
	return math.Round(similarity*1000) / 1000
}

func sq(d float64) float64 { return d * d }

// hexToRGB parses a 6-digit hex color, with or without a leading '#'.
func hexToRGB(color string) (r, g, b float64, ok bool) {
	hex := strings.TrimPrefix(color, "#")
	if len(hex) != 6 {
		return 0, 0, 0, false
	}
	channels := [3]float64{}
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseUint(hex[i*2:i*2+2], 16, 8)
		if err != nil {
			return 0, 0, 0, false
		}
		channels[i] = float64(v)
	}
	return channels[0], channels[1], channels[2], true
}
