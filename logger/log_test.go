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

package logger_test

import (
	"testing"

	"github.com/jetsetilly/gophernes/logger"
	"github.com/jetsetilly/gophernes/test"
)

func TestLogger(t *testing.T) {
	tw := &test.Writer{}

	logger.Clear()
	logger.Write(tw)
	test.ExpectedSuccess(t, tw.Compare(""))

	logger.Log(logger.Allow, "test", "this is a test")
	logger.Write(tw)
	test.ExpectedSuccess(t, tw.Compare("test: this is a test\n"))

	// clear the test.Writer buffer and the central log
	tw.Clear()
	logger.Clear()

	logger.Logf(logger.Allow, "test", "this is test %d", 2)
	logger.Write(tw)
	test.ExpectedSuccess(t, tw.Compare("test: this is test 2\n"))
}

func TestRepeatedEntries(t *testing.T) {
	tw := &test.Writer{}

	logger.Clear()
	logger.Log(logger.Allow, "test", "same detail")
	logger.Log(logger.Allow, "test", "same detail")
	logger.Log(logger.Allow, "test", "same detail")
	logger.Write(tw)
	test.ExpectedSuccess(t, tw.Compare("test: same detail (repeat x3)\n"))
}

func TestTail(t *testing.T) {
	tw := &test.Writer{}

	logger.Clear()
	logger.Log(logger.Allow, "test", "first")
	logger.Log(logger.Allow, "test", "second")
	logger.Log(logger.Allow, "test", "third")

	logger.Tail(tw, 2)
	test.ExpectedSuccess(t, tw.Compare("test: second\ntest: third\n"))
}
