// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"

	"github.com/aclements/go-plotscale/axis"
	"github.com/aclements/go-plotscale/internal/config"
	"github.com/aclements/go-plotscale/scale"
	"github.com/aclements/go-plotscale/svgplot"
)

func (c *cli) serveCommand() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve [flags]",
		Short: "Serve picked scales and rendered axes over HTTP",
		Long: `Serve answers GET /scale with a picked scale as JSON and
GET /axis.svg with the axis drawn as SVG. Both take the scale flags of
pick as query parameters, plus data=v1,v2,... and, for text scales,
labels=a,b,...`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			lg := log.FromContext(ctx)
			if addr == "" {
				addr = c.cfg.Serve.Addr
			}
			m, err := c.metrics()
			if err != nil {
				return err
			}
			defer m.Close()

			srv := &http.Server{
				Addr:              addr,
				Handler:           newRouter(c.cfg, lg, &lockedMetrics{m: m}),
				ReadHeaderTimeout: 10 * time.Second,
			}
			errc := make(chan error, 1)
			go func() {
				lg.Info("serving", "addr", addr)
				errc <- srv.ListenAndServe()
			}()
			select {
			case err := <-errc:
				return err
			case <-ctx.Done():
			}
			lg.Info("shutting down")
			sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(sctx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "serve HTTP on `address` (default from config)")
	return cmd
}

// lockedMetrics serializes measurement, since a font face caches
// glyphs and is not safe for concurrent use.
type lockedMetrics struct {
	mu sync.Mutex
	m  scale.LabelMeasurer
}

func (l *lockedMetrics) MeasureLabel(text string) (float64, float64) {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.m.MeasureLabel(text)
}

type server struct {
	cfg     *config.Config
	logger  *log.Logger
	metrics scale.LabelMeasurer
}

func newRouter(cfg *config.Config, lg *log.Logger, m scale.LabelMeasurer) http.Handler {
	s := &server{cfg, lg, m}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(s.logRequests)
	r.Get("/scale", s.handleScale)
	r.Get("/axis.svg", s.handleAxisSVG)
	return r
}

func (s *server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, req.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, req)
		s.logger.Debug("request", "method", req.Method, "path", req.URL.Path,
			"status", ww.Status(), "dur", time.Since(start), "id", middleware.GetReqID(req.Context()))
	})
}

// pickAxis builds and picks the axis the request's query describes.
func (s *server) pickAxis(req *http.Request) (*axis.Axis, error) {
	q := req.URL.Query()
	a, err := specFromQuery(q).build(s.cfg, s.metrics)
	if err != nil {
		return nil, err
	}
	var data []float64
	if v := q.Get("data"); v != "" {
		if data, err = parseValues(a.Scale().Type(), location(a), strings.Split(v, ",")); err != nil {
			return nil, err
		}
	}
	b := a.Scale().Base()
	if len(data) == 0 && b.MinAuto && b.MaxAuto && a.Scale().Type() != scale.TypeText {
		return nil, fmt.Errorf("%w: no data values", scale.ErrInvalidRange)
	}
	if err := a.Pick(data); err != nil {
		return nil, err
	}
	return a, nil
}

func (s *server) fail(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	if errors.Is(err, scale.ErrInvalidParameter) || errors.Is(err, scale.ErrInvalidRange) {
		code = http.StatusBadRequest
	}
	s.logger.Debug("request failed", "status", code, "err", err)
	http.Error(w, err.Error(), code)
}

type tickJSON struct {
	Value float64 `json:"value"`
	Pos   float64 `json:"pos"`
	Label string  `json:"label,omitempty"`
	Major bool    `json:"major,omitempty"`
}

type scaleJSON struct {
	Type      string     `json:"type"`
	Min       float64    `json:"min"`
	Max       float64    `json:"max"`
	MajorStep float64    `json:"majorStep"`
	MinorStep float64    `json:"minorStep"`
	Mag       int        `json:"mag"`
	Format    string     `json:"format"`
	ScaledMin float64    `json:"scaledMin"`
	ScaledMax float64    `json:"scaledMax"`
	Ticks     []tickJSON `json:"ticks"`
}

func (s *server) handleScale(w http.ResponseWriter, req *http.Request) {
	a, err := s.pickAxis(req)
	if err != nil {
		s.fail(w, err)
		return
	}
	ticks, err := a.Ticks()
	if err != nil {
		s.fail(w, err)
		return
	}
	b := a.Scale().Base()
	out := scaleJSON{
		Type:      a.Scale().Type().String(),
		Min:       b.Min,
		Max:       b.Max,
		MajorStep: b.MajorStep,
		MinorStep: b.MinorStep,
		Mag:       b.Mag,
		Format:    b.Format,
		ScaledMin: b.ScaledMin,
		ScaledMax: b.ScaledMax,
		Ticks:     make([]tickJSON, len(ticks)),
	}
	for i, t := range ticks {
		out.Ticks[i] = tickJSON{t.Value, t.Pos, t.Label, t.Major}
	}
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(out); err != nil {
		s.logger.Error("writing response", "err", err)
	}
}

// axisMargin surrounds a standalone axis drawing.
const axisMargin = 40

func (s *server) handleAxisSVG(w http.ResponseWriter, req *http.Request) {
	a, err := s.pickAxis(req)
	if err != nil {
		s.fail(w, err)
		return
	}
	width, height := a.Length+2*axisMargin, float64(2*axisMargin)
	x, y := float64(axisMargin), float64(axisMargin)
	if !a.Horizontal() {
		width, height = 2*axisMargin, a.Length+2*axisMargin
		x = 2*axisMargin - 1
	}

	// Render to a buffer so a failure can still be reported.
	var buf bytes.Buffer
	svg := svgplot.NewSVG(&buf, width, height)
	if err := svgplot.DefaultTicksFormat.DrawAxis(svg, a, x, y); err != nil {
		s.fail(w, err)
		return
	}
	if err := svg.Done(); err != nil {
		s.fail(w, err)
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.Write(buf.Bytes())
}
