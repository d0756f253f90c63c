// SPDX-License-Identifier: MPL-2.0

package main

import (
	"github.com/spf13/cobra"

	"widgetcfg/pkg/types"
	"widgetcfg/pkg/widgetfile"
)

var (
	authorEmail   string
	authorWebsite string

	setCmd = &cobra.Command{
		Use:   "set",
		Short: "Set a manifest identity field",
		Long: `Set one of the manifest's identity fields. Validated fields (id,
version, android-versioncode, ios-bundleversion) reject values that do not
match their pattern and leave the manifest untouched.`,
	}

	setIDCmd = &cobra.Command{
		Use:   "id <identifier>",
		Short: "Set the application identifier",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutateManifest("set id", func(wf *widgetfile.Widgetfile) error {
				return wf.SetID(types.AppID(args[0]))
			})
		},
	}

	setVersionCmd = &cobra.Command{
		Use:   "version <MAJOR.MINOR.PATCH>",
		Short: "Set the application version",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutateManifest("set version", func(wf *widgetfile.Widgetfile) error {
				return wf.SetVersion(types.Version(args[0]))
			})
		},
	}

	setAndroidVersionCodeCmd = &cobra.Command{
		Use:   "android-versioncode <code>",
		Short: "Set the Android versionCode counter",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutateManifest("set android-versionCode", func(wf *widgetfile.Widgetfile) error {
				return wf.SetAndroidVersionCode(types.AndroidVersionCode(args[0]))
			})
		},
	}

	setIOSBundleVersionCmd = &cobra.Command{
		Use:   "ios-bundleversion <version>",
		Short: "Set the iOS CFBundleVersion",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutateManifest("set ios-CFBundleVersion", func(wf *widgetfile.Widgetfile) error {
				return wf.SetIOSBundleVersion(types.IOSBundleVersion(args[0]))
			})
		},
	}

	setNameCmd = &cobra.Command{
		Use:   "name <name>",
		Short: "Set the display name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutateManifest("set name", func(wf *widgetfile.Widgetfile) error {
				wf.SetName(args[0])
				return nil
			})
		},
	}

	setDescriptionCmd = &cobra.Command{
		Use:   "description <text>",
		Short: "Set the description",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutateManifest("set description", func(wf *widgetfile.Widgetfile) error {
				wf.SetDescription(args[0])
				return nil
			})
		},
	}

	setAuthorCmd = &cobra.Command{
		Use:   "author <name>",
		Short: "Set the author",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return mutateManifest("set author", func(wf *widgetfile.Widgetfile) error {
				wf.SetAuthor(args[0], authorEmail, authorWebsite)
				return nil
			})
		},
	}
)

func init() {
	setAuthorCmd.Flags().StringVar(&authorEmail, "email", "", "author contact email")
	setAuthorCmd.Flags().StringVar(&authorWebsite, "website", "", "author website URL")

	setCmd.AddCommand(setIDCmd)
	setCmd.AddCommand(setVersionCmd)
	setCmd.AddCommand(setAndroidVersionCodeCmd)
	setCmd.AddCommand(setIOSBundleVersionCmd)
	setCmd.AddCommand(setNameCmd)
	setCmd.AddCommand(setDescriptionCmd)
	setCmd.AddCommand(setAuthorCmd)
}
