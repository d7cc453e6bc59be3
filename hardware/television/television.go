// This file is part of Gophernes.
//
// Gophernes is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gophernes is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gophernes.  If not, see <https://www.gnu.org/licenses/>.

// Package television defines the interfaces between the console and
// whatever is displaying its output. The console produces a complete frame
// of pixels and a frame's worth of audio samples at every frame boundary
// and hands them to the registered PixelRenderer and AudioMixer
// implementations. Renderers and mixers range from SDL windows and audio
// devices to WAV writers and rolling digests; the console does not care
// which it is talking to.
package television

// Dimensions of the visible frame and the timing of its delivery.
const (
	// HorizPixels is the width of the visible frame.
	HorizPixels = 256

	// VertPixels is the height of the visible frame.
	VertPixels = 240

	// FramesPerSecond is the nominal NTSC frame rate. The true rate is
	// fractionally faster but the difference is inaudible and invisible for
	// our purposes.
	FramesPerSecond = 60

	// SampleRate is the rate at which audio samples are generated.
	SampleRate = 44100

	// SamplesPerFrame is the number of audio samples delivered to an
	// AudioMixer at each frame boundary.
	SamplesPerFrame = SampleRate / FramesPerSecond
)

// PixelRenderer implementations display, or otherwise work with, the video
// output of the console. For example digest.Video.
type PixelRenderer interface {
	// NewFrame is called at every frame boundary with the completed frame.
	// The pixels slice is RGBA, HorizPixels*VertPixels*4 bytes long, and is
	// reused by the console; renderers must not hold on to it after
	// NewFrame returns.
	NewFrame(frameNum int, pixels []uint8) error

	// some renderers may need to conclude and/or dispose of resources
	// gently. for simplicity, the PixelRenderer should be considered
	// unusable after EndRendering() has been called
	EndRendering() error
}

// AudioMixer implementations work with sound; most probably playing it. An
// example of an AudioMixer that does not play sound but otherwise works
// with the audio stream is wavwriter.WavWriter.
type AudioMixer interface {
	// SetAudio is called at every frame boundary with the frame's worth of
	// samples. The slice is reused by the console; mixers must copy what
	// they need before returning.
	SetAudio(samples []int16) error

	// some mixers may need to conclude and/or dispose of resources gently.
	// for simplicity, the AudioMixer should be considered unusable after
	// EndMixing() has been called
	EndMixing() error
}

// FrameTrigger implementations listen for NewFrame events without wanting
// the pixel data itself.
type FrameTrigger interface {
	NewFrame(frameNum int) error
}
