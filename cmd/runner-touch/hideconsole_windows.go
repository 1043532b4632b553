//go:build windows

package main

// Started from Explorer, the window should not come with a console.
import _ "github.com/ebitengine/hideconsole"
