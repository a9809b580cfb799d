// SPDX-License-Identifier: EPL-2.0

package bmp

import (
	"fmt"
	"io"

	"golang.org/x/image/bmp"

	"github.com/ihalseide/img-to-sound/pixel"
)

type Decoder struct{}

func (Decoder) Decode(r io.Reader) (*pixel.Grid, error) {
	img, err := bmp.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", pixel.ErrCannotLoad, err)
	}

	return pixel.FromImage(img), nil
}
