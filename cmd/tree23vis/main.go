// Command tree23vis is a small interactive demo: type digits, press Enter
// to insert the number, Delete to erase it, or Tab to search for it, and
// watch the tree's structural changes animate.
//
// This is a convenience wrapper around package tree23 and tree23/render;
// nothing in either package depends on it.
package main

import (
	"fmt"
	"log"
	"strconv"
	"strings"

	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/mvislab/tree23"
	"github.com/mvislab/tree23/render"
)

var lightGray = color.NRGBA{R: 0xe8, G: 0xe8, B: 0xe8, A: 0xff}

const (
	screenWidth  = 960
	screenHeight = 540
)

type game struct {
	tree       *tree23.Tree[int]
	model      *tree23.DrawingModel[int]
	producer   *tree23.AnimationProducer[int]
	controller *tree23.Controller[int]
	renderer   *render.Renderer

	input       strings.Builder
	lastMessage string
}

func newGame() *game {
	tree := tree23.New[int]()
	model := tree23.NewDrawingModel[int]()
	producer := tree23.NewAnimationProducer[int](model)
	tree.Subscribe(producer.Observer())

	controller := tree23.NewController[int](tree, func(s string) (int, error) {
		return strconv.Atoi(strings.TrimSpace(s))
	})

	return &game{
		tree:       tree,
		model:      model,
		producer:   producer,
		controller: controller,
		renderer:   render.NewRenderer(text.NewGoXFace(basicfont.Face7x13)),
	}
}

func (g *game) Update() error {
	for _, r := range ebiten.AppendInputChars(nil) {
		if r >= '0' && r <= '9' {
			g.input.WriteByte(byte(r))
		}
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyEnter):
		g.submit(g.controller.Insert)
	case inpututil.IsKeyJustPressed(ebiten.KeyDelete):
		g.submit(g.controller.Erase)
	case inpututil.IsKeyJustPressed(ebiten.KeyTab):
		result, found := g.controller.Search(g.input.String())
		g.applyResult(result)
		if result.Err == nil {
			g.lastMessage = fmt.Sprintf("found: %v", found)
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyBackspace):
		s := g.input.String()
		g.input.Reset()
		if len(s) > 0 {
			g.input.WriteString(s[:len(s)-1])
		}
	}

	const dt = 1.0 / 60.0
	if g.producer.Update(dt) {
		g.renderer.Feed(g.model.Scene())
	}
	g.renderer.Update(dt)
	return nil
}

func (g *game) submit(op func(string) tree23.ControllerResult) {
	result := op(g.input.String())
	g.applyResult(result)
	g.renderer.Feed(g.model.Scene())
}

func (g *game) applyResult(result tree23.ControllerResult) {
	if result.ClearInput {
		g.input.Reset()
	}
	if result.Err != nil {
		g.lastMessage = fmt.Sprintf("invalid key: %v", result.Err)
	}
}

func (g *game) Draw(screen *ebiten.Image) {
	screen.Fill(lightGray)
	g.renderer.Draw(screen)
	ebitenutil.DebugPrint(screen, fmt.Sprintf("key: %s\n%s\nEnter=insert Delete=erase Tab=search", g.input.String(), g.lastMessage))
}

func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowTitle("tree23vis")
	if err := ebiten.RunGame(newGame()); err != nil {
		log.Fatal(err)
	}
}
