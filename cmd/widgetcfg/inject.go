// SPDX-License-Identifier: MPL-2.0

package main

import (
	"github.com/spf13/cobra"

	"widgetcfg/pkg/widgetfile"
)

var (
	injectAt       string
	injectIfAbsent string

	injectCmd = &cobra.Command{
		Use:   "inject <xml>",
		Short: "Inject a raw XML fragment into the manifest",
		Long: `Parse an XML fragment and append it under the widget root, or under
the element addressed by --at. With --if-absent the fragment is only added
when the given path matches nothing, which makes the injection idempotent.

Examples:
  widgetcfg inject '<allow-navigation href="https://*/*" />'
  widgetcfg inject '<splash src="splash.png" />' --at '/widget/platform[@name="android"]'
  widgetcfg inject '<feature name="Camera" />' --if-absent 'feature[@name="Camera"]'`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []widgetfile.InjectOption
			if injectAt != "" {
				opts = append(opts, widgetfile.InjectAt(injectAt))
			}
			if injectIfAbsent != "" {
				opts = append(opts, widgetfile.InjectIfAbsent(injectIfAbsent))
			}
			return mutateManifest("inject fragment", func(wf *widgetfile.Widgetfile) error {
				return wf.AddRawXML(args[0], opts...)
			})
		},
	}
)

func init() {
	injectCmd.Flags().StringVar(&injectAt, "at", "", "element path to inject under (defaults to the widget root)")
	injectCmd.Flags().StringVar(&injectIfAbsent, "if-absent", "", "skip the injection when this path already matches")
}
