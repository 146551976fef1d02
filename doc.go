// Package main provides the entry point for the theme settings service.
// It runs a web server using the Fiber framework that resolves, validates
// and persists the typed setting values declared by themes. The application
// uses gorm for data persistence; setting rows are created lazily on first
// write and resolved against declared defaults on read.
package main
