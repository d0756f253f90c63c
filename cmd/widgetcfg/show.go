// SPDX-License-Identifier: MPL-2.0

package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Summarize the manifest",
	Long: `Print a summary of the manifest: identity fields, preferences per
scope, the access-origin allowlist, and declared hooks.`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func runShow(cmd *cobra.Command, args []string) error {
	wf, err := loadManifest()
	if err != nil {
		return err
	}

	fmt.Println(TitleStyle.Render(orDash(wf.Name())) + SubtitleStyle.Render("  "+wf.Path()))
	printField("id", wf.ID())
	printField("version", wf.Version())
	if v := wf.AndroidVersionCode(); v != "" {
		printField("android-versionCode", v)
	}
	if v := wf.IOSBundleVersion(); v != "" {
		printField("ios-CFBundleVersion", v)
	}
	if d := wf.Description(); d != "" {
		printField("description", d)
	}
	if a := wf.Author(); a.Name != "" || a.Email != "" || a.Website != "" {
		line := a.Name
		if a.Email != "" {
			line += " <" + a.Email + ">"
		}
		if a.Website != "" {
			line += " (" + a.Website + ")"
		}
		printField("author", line)
	}

	if prefs := wf.Preferences(); len(prefs) > 0 {
		fmt.Println(SubtitleStyle.Render("Preferences:"))
		for _, p := range prefs {
			fmt.Printf("  %s = %s\n", FieldStyle.Render(p.Name), p.Value)
		}
	}
	for _, platform := range wf.PlatformNames() {
		prefs := wf.PlatformPreferences(platform)
		if len(prefs) == 0 {
			continue
		}
		fmt.Println(SubtitleStyle.Render("Preferences (" + platform + "):"))
		for _, p := range prefs {
			fmt.Printf("  %s = %s\n", FieldStyle.Render(p.Name), p.Value)
		}
	}

	if origins := wf.AccessOrigins(); len(origins) > 0 {
		fmt.Println(SubtitleStyle.Render("Access origins:"))
		for _, o := range origins {
			line := "  " + o.Origin
			for _, opt := range o.Options {
				line += fmt.Sprintf(" [%s=%s]", opt.Key, opt.Value)
			}
			fmt.Println(line)
		}
	}

	if hooks := wf.Hooks(); len(hooks) > 0 {
		fmt.Println(SubtitleStyle.Render("Hooks:"))
		for _, h := range hooks {
			fmt.Printf("  %s -> %s\n", FieldStyle.Render(h.Type.String()), h.Src)
		}
	}
	return nil
}

func printField(name, value string) {
	fmt.Printf("%s %s\n", FieldStyle.Render(name+":"), orDash(value))
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
