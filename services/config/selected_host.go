//go:build !atmega2560

package config

// SelectedBoard is the plan host tools default to.
const SelectedBoard = "sim"
