// SPDX-License-Identifier: Unlicense OR MIT

package app

import (
	"github.com/Lattexshz/Bly/handle"
	"github.com/Lattexshz/Bly/internal/backend"
	"github.com/Lattexshz/Bly/internal/dom"
)

func init() {
	webDriver = newDOMBackend
}

func newDOMBackend(h handle.Raw) (backend.Backend, error) {
	b, err := dom.New(h.(handle.Web).ID)
	if err != nil {
		return nil, err
	}
	return b, nil
}
