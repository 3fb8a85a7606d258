// This file is part of Minuet.
//
// Minuet is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Minuet is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Minuet.  If not, see <https://www.gnu.org/licenses/>.

package sdlplay

import (
	"unsafe"

	"github.com/go-gl/gl/v2.1/gl"
	"github.com/inkyblackness/imgui-go/v4"

	"minuet/curated"
	"minuet/gui"
	"minuet/logger"
)

type gl21Texture struct {
	id     uint32
	width  int
	height int
}

func newTexture(linear bool) gl21Texture {
	var tex gl21Texture
	gl.GenTextures(1, &tex.id)
	gl.BindTexture(gl.TEXTURE_2D, tex.id)
	if linear {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	} else {
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
		gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	}
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	return tex
}

// upload the pixel buffer to the texture. the texture is recreated if the
// size of the buffer has changed.
func (tex *gl21Texture) upload(buf *gui.PixelBuffer) {
	gl.BindTexture(gl.TEXTURE_2D, tex.id)
	if buf.Width != tex.width || buf.Height != tex.height {
		tex.width = buf.Width
		tex.height = buf.Height
		gl.TexImage2D(gl.TEXTURE_2D, 0,
			gl.RGBA, int32(buf.Width), int32(buf.Height), 0,
			gl.RGBA, gl.UNSIGNED_BYTE,
			gl.Ptr(buf.Pix))
	} else {
		gl.TexSubImage2D(gl.TEXTURE_2D, 0,
			0, 0, int32(buf.Width), int32(buf.Height),
			gl.RGBA, gl.UNSIGNED_BYTE,
			gl.Ptr(buf.Pix))
	}
}

// gl21 draws the scene texture and the imgui draw lists with the fixed
// function pipeline.
type gl21 struct {
	scene gl21Texture
	font  gl21Texture
}

func newRenderer(fnts imgui.FontAtlas) (*gl21, error) {
	err := gl.Init()
	if err != nil {
		return nil, curated.Errorf(GLFailed, err)
	}

	logger.Logf(logger.Allow, "gl21", "vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	logger.Logf(logger.Allow, "gl21", "renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	logger.Logf(logger.Allow, "gl21", "driver: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	rnd := &gl21{
		scene: newTexture(true),
		font:  newTexture(true),
	}

	image := fnts.TextureDataRGBA32()
	gl.BindTexture(gl.TEXTURE_2D, rnd.font.id)
	gl.PixelStorei(gl.UNPACK_ROW_LENGTH, 0)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA, int32(image.Width), int32(image.Height), 0, gl.RGBA, gl.UNSIGNED_BYTE, image.Pixels)
	rnd.font.width = image.Width
	rnd.font.height = image.Height
	fnts.SetTextureID(imgui.TextureID(rnd.font.id))

	return rnd, nil
}

func (rnd *gl21) destroy() {
	gl.DeleteTextures(1, &rnd.scene.id)
	gl.DeleteTextures(1, &rnd.font.id)
}

func (rnd *gl21) preRender(fbw, fbh int) {
	gl.Viewport(0, 0, int32(fbw), int32(fbh))
	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// renderScene draws the scene texture stretched over the area given in screen
// coordinates.
func (rnd *gl21) renderScene(x, y, w, h, winw, winh, fbw, fbh int) {
	if rnd.scene.width == 0 || rnd.scene.height == 0 || w <= 0 || h <= 0 {
		return
	}

	gl.PushAttrib(gl.ENABLE_BIT | gl.TRANSFORM_BIT)
	gl.Disable(gl.BLEND)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.SCISSOR_TEST)
	gl.Enable(gl.TEXTURE_2D)

	gl.Viewport(0, 0, int32(fbw), int32(fbh))
	gl.MatrixMode(gl.PROJECTION)
	gl.PushMatrix()
	gl.LoadIdentity()
	gl.Ortho(0, float64(winw), float64(winh), 0, -1, 1)
	gl.MatrixMode(gl.MODELVIEW)
	gl.PushMatrix()
	gl.LoadIdentity()

	x0, y0 := float32(x), float32(y)
	x1, y1 := float32(x+w), float32(y+h)

	gl.BindTexture(gl.TEXTURE_2D, rnd.scene.id)
	gl.Color4f(1, 1, 1, 1)
	gl.Begin(gl.QUADS)
	gl.TexCoord2f(0, 0)
	gl.Vertex2f(x0, y0)
	gl.TexCoord2f(1, 0)
	gl.Vertex2f(x1, y0)
	gl.TexCoord2f(1, 1)
	gl.Vertex2f(x1, y1)
	gl.TexCoord2f(0, 1)
	gl.Vertex2f(x0, y1)
	gl.End()

	gl.MatrixMode(gl.MODELVIEW)
	gl.PopMatrix()
	gl.MatrixMode(gl.PROJECTION)
	gl.PopMatrix()
	gl.PopAttrib()
}

// renderOverlay draws the imgui draw lists. must be called after
// imgui.Render().
func (rnd *gl21) renderOverlay(winw, winh, fbw, fbh int) {
	drawData := imgui.RenderedDrawData()

	// avoid rendering when minimized
	if fbw <= 0 || fbh <= 0 || winw <= 0 || winh <= 0 {
		return
	}

	// screen coordinates are not the same as framebuffer coordinates on high
	// DPI displays
	drawData.ScaleClipRects(imgui.Vec2{
		X: float32(fbw) / float32(winw),
		Y: float32(fbh) / float32(winh),
	})

	var lastTexture int32
	gl.GetIntegerv(gl.TEXTURE_BINDING_2D, &lastTexture)
	var lastPolygonMode [2]int32
	gl.GetIntegerv(gl.POLYGON_MODE, &lastPolygonMode[0])
	var lastViewport [4]int32
	gl.GetIntegerv(gl.VIEWPORT, &lastViewport[0])
	var lastScissorBox [4]int32
	gl.GetIntegerv(gl.SCISSOR_BOX, &lastScissorBox[0])

	gl.PushAttrib(gl.ENABLE_BIT | gl.COLOR_BUFFER_BIT | gl.TRANSFORM_BIT)
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.CULL_FACE)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.LIGHTING)
	gl.Disable(gl.COLOR_MATERIAL)
	gl.Enable(gl.SCISSOR_TEST)
	gl.EnableClientState(gl.VERTEX_ARRAY)
	gl.EnableClientState(gl.TEXTURE_COORD_ARRAY)
	gl.EnableClientState(gl.COLOR_ARRAY)
	gl.Enable(gl.TEXTURE_2D)
	gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)

	gl.Viewport(0, 0, int32(fbw), int32(fbh))
	gl.MatrixMode(gl.PROJECTION)
	gl.PushMatrix()
	gl.LoadIdentity()
	gl.Ortho(0, float64(winw), float64(winh), 0, -1, 1)
	gl.MatrixMode(gl.MODELVIEW)
	gl.PushMatrix()
	gl.LoadIdentity()

	vertexSize, vertexOffsetPos, vertexOffsetUv, vertexOffsetCol := imgui.VertexBufferLayout()
	indexSize := imgui.IndexBufferLayout()

	drawType := gl.UNSIGNED_SHORT
	const bytesPerUint32 = 4
	if indexSize == bytesPerUint32 {
		drawType = gl.UNSIGNED_INT
	}

	for _, commandList := range drawData.CommandLists() {
		vertexBuffer, _ := commandList.VertexBuffer()
		indexBuffer, _ := commandList.IndexBuffer()
		indexBufferOffset := uintptr(indexBuffer)

		gl.VertexPointer(2, gl.FLOAT, int32(vertexSize), unsafe.Pointer(uintptr(vertexBuffer)+uintptr(vertexOffsetPos)))
		gl.TexCoordPointer(2, gl.FLOAT, int32(vertexSize), unsafe.Pointer(uintptr(vertexBuffer)+uintptr(vertexOffsetUv)))
		gl.ColorPointer(4, gl.UNSIGNED_BYTE, int32(vertexSize), unsafe.Pointer(uintptr(vertexBuffer)+uintptr(vertexOffsetCol)))

		for _, command := range commandList.Commands() {
			clipRect := command.ClipRect()
			gl.Scissor(int32(clipRect.X), int32(fbh)-int32(clipRect.W), int32(clipRect.Z-clipRect.X), int32(clipRect.W-clipRect.Y))
			gl.BindTexture(gl.TEXTURE_2D, uint32(command.TextureID()))
			gl.DrawElementsWithOffset(gl.TRIANGLES, int32(command.ElementCount()), uint32(drawType), indexBufferOffset)
			indexBufferOffset += uintptr(command.ElementCount() * indexSize)
		}
	}

	gl.DisableClientState(gl.COLOR_ARRAY)
	gl.DisableClientState(gl.TEXTURE_COORD_ARRAY)
	gl.DisableClientState(gl.VERTEX_ARRAY)
	gl.BindTexture(gl.TEXTURE_2D, uint32(lastTexture))
	gl.MatrixMode(gl.MODELVIEW)
	gl.PopMatrix()
	gl.MatrixMode(gl.PROJECTION)
	gl.PopMatrix()
	gl.PopAttrib()
	gl.PolygonMode(gl.FRONT, uint32(lastPolygonMode[0]))
	gl.PolygonMode(gl.BACK, uint32(lastPolygonMode[1]))
	gl.Viewport(lastViewport[0], lastViewport[1], lastViewport[2], lastViewport[3])
	gl.Scissor(lastScissorBox[0], lastScissorBox[1], lastScissorBox[2], lastScissorBox[3])
}
