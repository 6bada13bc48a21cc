package app

import (
	"io"

	"github.com/dshills/nanox/internal/renderer/backend"
	"github.com/dshills/nanox/internal/renderer/display"
)

// Dump writes the highlighted document to w, one line per row, without
// taking over the terminal. Long lines are cut at the terminal width, or
// at 80 columns when w is not a terminal.
func (app *Application) Dump(w io.Writer) error {
	term := backend.NewANSI(w, backend.ANSIOptions{TrueColor: app.settings.TrueColor})
	opts := app.displayOptions()
	opts.ShowModeLine = false

	d := display.New(term, app.engine, opts)
	if err := d.Dump(app.doc); err != nil {
		return NewOperationError("dump", app.doc.Name(), err)
	}
	return nil
}
