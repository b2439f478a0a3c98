package main

import "prockill/internal/tui"

// pickFunc runs the interactive picker for --list --tui.
var pickFunc = tui.Pick
