// Copyright (C) 2024 Alexei Volkov
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package rest exposes the stellar parameter lookup as a small JSON API.
package rest

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/avolkov/dwarfseq/internal/interp"
	"github.com/avolkov/dwarfseq/internal/star"
	"github.com/avolkov/dwarfseq/internal/table"
)

// Serve runs the API on the given address, e.g. ":8080", until terminated.
func Serve(addr string) error {
	return Router().Run(addr)
}

// Router builds the gin engine with all routes attached.
func Router() *gin.Engine {
	r := gin.Default()
	api := r.Group("/api")
	{
		v1 := api.Group("/v1")
		{
			v1.GET("/ping", getPing)
			v1.POST("/lookup", postLookup)
		}
	}
	return r
}

func getPing(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "pong",
	})
}

type postLookupArgs struct {
	Given       string    `json:"given"`
	Values      []float64 `json:"values"`
	DistancePc  float64   `json:"distancePc"`
	ParallaxMas float64   `json:"parallaxMas"`
	Ebv         float64   `json:"ebv"`
	Binary      bool      `json:"binary"`
}

func postLookup(c *gin.Context) {
	var args postLookupArgs
	if err := c.ShouldBind(&args); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	dist := args.DistancePc
	if args.ParallaxMas != 0 {
		var err error
		if dist, err = star.DistanceFromParallax(args.ParallaxMas); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	given, values := args.Given, args.Values
	if given == "V" { // apparent magnitude pseudo-axis, needs a distance
		if dist <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "given=V requires distancePc or parallaxMas"})
			return
		}
		given = "Mv"
		abs := make([]float64, len(values))
		for i, v := range values {
			abs[i] = star.AbsoluteFromApparent(v, dist)
		}
		values = abs
	}

	q, err := table.ParseQuantity(given)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	res, err := star.NewResolver(table.Dwarfs()).Resolve(star.Request{
		Given:  q,
		Values: values,
		DistPc: dist,
		EBV:    args.Ebv,
		Binary: args.Binary,
	})
	if err != nil {
		status := http.StatusBadRequest
		if errors.Is(err, interp.ErrDegenerateWindow) {
			status = http.StatusUnprocessableEntity
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, res)
}
