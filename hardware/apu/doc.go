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

// Package apu implements the audio half of the 2A03: two pulse channels,
// a triangle channel and a noise channel, sequenced by a frame counter
// that also drives the console's only level-triggered interrupt.
//
// The emulation is split in two. The APU type is the cycle-accurate side:
// it owns the registers, the envelopes, sweeps and counters, and it is
// ticked in lockstep with the rest of the console. Rather than producing
// samples it reduces its state to a stream of Commands whenever something
// audible changes. The Synth type is the rendering side: a small bank of
// band-limited oscillators that consumes the command stream and produces
// PCM at the television sample rate. Because the commands fully describe
// the audible state, the rendering side can run at frame granularity (or
// be discarded entirely) without affecting emulation accuracy.
//
// The DMC channel is not emulated.
package apu
