// Package codegen writes C and Rust definitions of a profile's packet layout
// for actuator firmware.
package codegen

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"text/template"

	"github.com/Alia5/padlink/frame"
)

// Generator writes generated sources into one directory.
type Generator struct {
	outputDir string
	logger    *slog.Logger
}

func New(outputDir string, logger *slog.Logger) *Generator {
	return &Generator{outputDir: outputDir, logger: logger}
}

type axisData struct {
	Name   string
	Const  string
	Offset int
	Neg    string
	Pos    string
}

type buttonData struct {
	Name   string
	Const  string
	Action string
	Offset int
	Mask   string
}

type layoutData struct {
	Header      string
	Profile     string
	Prefix      string
	StructName  string
	Size        int
	TickMS      int64
	AxisMin     byte
	AxisNeutral byte
	AxisMax     byte
	Axes        []axisData
	Buttons     []buttonData
	ButtonBytes int
	ButtonBase  int
}

func layout(p frame.Profile, header string) layoutData {
	d := layoutData{
		Header:      header,
		Profile:     p.Name,
		Prefix:      "PADLINK_" + toUpperSnake(p.Name),
		StructName:  toPascal(p.Name) + "Packet",
		Size:        p.Size(),
		TickMS:      p.TickPeriod.Milliseconds(),
		AxisMin:     frame.AxisMin,
		AxisNeutral: frame.AxisNeutral,
		AxisMax:     frame.AxisMax,
		ButtonBytes: p.ButtonBytes(),
		ButtonBase:  len(p.Axes),
	}
	for i, ax := range p.Axes {
		d.Axes = append(d.Axes, axisData{
			Name:   toSnake(ax.Name),
			Const:  toUpperSnake(ax.Name),
			Offset: i,
			Neg:    ax.Negative.String(),
			Pos:    ax.Positive.String(),
		})
	}
	for _, b := range p.Buttons {
		d.Buttons = append(d.Buttons, buttonData{
			Name:   toSnake(b.Name),
			Const:  toUpperSnake(b.Name),
			Action: b.Action.String(),
			Offset: len(p.Axes) + b.Index,
			Mask:   fmt.Sprintf("0x%02x", b.Mask),
		})
	}
	return d
}

// GenerateC writes padlink_<profile>.h.
func (g *Generator) GenerateC(p frame.Profile) (string, error) {
	return g.write(p, "padlink_"+toSnake(p.Name)+".h", cHeaderTemplate, fileHeader("//"))
}

// GenerateRust writes padlink_<profile>.rs.
func (g *Generator) GenerateRust(p frame.Profile) (string, error) {
	return g.write(p, "padlink_"+toSnake(p.Name)+".rs", rustModuleTemplate, fileHeader("//"))
}

func (g *Generator) write(p frame.Profile, name, tmplStr, header string) (string, error) {
	if err := p.Validate(); err != nil {
		return "", err
	}
	tmpl, err := template.New(name).Parse(tmplStr)
	if err != nil {
		return "", fmt.Errorf("parse template: %w", err)
	}
	if err := os.MkdirAll(g.outputDir, 0o755); err != nil {
		return "", fmt.Errorf("create output dir: %w", err)
	}

	path := filepath.Join(g.outputDir, name)
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create %s: %w", name, err)
	}
	defer f.Close()

	if err := tmpl.Execute(f, layout(p, header)); err != nil {
		return "", fmt.Errorf("execute %s template: %w", name, err)
	}
	g.logger.Info("Generated packet layout", "profile", p.Name, "file", path)
	return path, nil
}
