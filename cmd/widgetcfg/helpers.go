// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"
	"os"

	"widgetcfg/internal/issue"
	"widgetcfg/pkg/widgetfile"
)

// loadManifest opens the manifest addressed by --file, decorating failures
// with rendered guidance.
func loadManifest() (*widgetfile.Widgetfile, error) {
	wf, err := widgetfile.Parse(manifestPath)
	if err != nil {
		return nil, decorate(err, "load manifest", manifestPath)
	}
	return wf, nil
}

// saveManifest persists the manifest, keeping a backup copy first when the
// configuration asks for one.
func saveManifest(wf *widgetfile.Widgetfile) error {
	if cfg.Backup.Enabled {
		if err := writeBackup(wf.Path()); err != nil {
			return decorate(err, "back up manifest", wf.Path())
		}
	}
	if err := wf.Save(); err != nil {
		return decorate(err, "save manifest", wf.Path())
	}
	return nil
}

// writeBackup copies the current on-disk manifest aside before it is
// overwritten. A manifest that does not exist yet needs no backup.
func writeBackup(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path+cfg.Backup.Suffix, data, 0o644)
}

// decorate wraps an error with operation context and, when the failure
// class has dedicated guidance, prints it (rendered in verbose mode).
func decorate(err error, operation, resource string) error {
	if id, ok := issue.Classify(err); ok && verbose {
		if guide := issue.Lookup(id); guide != nil {
			if rendered, rerr := guide.Render(glamourStyle()); rerr == nil {
				fmt.Fprintln(os.Stderr, rendered)
			}
		}
	}
	return issue.WrapWithContext(err, operation, resource)
}

// glamourStyle maps the configured color scheme to a glamour style path.
func glamourStyle() string {
	switch cfg.UI.ColorScheme {
	case "dark":
		return "dark"
	case "light":
		return "light"
	default:
		return "auto"
	}
}

// mutateManifest is the shared load-mutate-save cycle behind every editing
// command: load the manifest, run the mutation, persist, confirm.
func mutateManifest(what string, fn func(wf *widgetfile.Widgetfile) error) error {
	wf, err := loadManifest()
	if err != nil {
		return err
	}
	if err := fn(wf); err != nil {
		return decorate(err, what, wf.Path())
	}
	if err := saveManifest(wf); err != nil {
		return err
	}
	reportChanged(what)
	return nil
}

// reportChanged prints the standard post-mutation confirmation.
func reportChanged(what string) {
	fmt.Printf("%s %s in %s\n", SuccessStyle.Render("✓"), what, FieldStyle.Render(manifestPath))
}
