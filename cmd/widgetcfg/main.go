// SPDX-License-Identifier: MPL-2.0

// widgetcfg is a command-line editor for widget application manifests
// (config.xml): typed, validated mutations over the manifest document,
// batch edit plans, and a lifecycle hook runner.
package main

func main() {
	Execute()
}
