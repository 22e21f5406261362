//go:build atmega2560

package config

// SelectedBoard is the plan the firmware boots with.
const SelectedBoard = "mega2560"
