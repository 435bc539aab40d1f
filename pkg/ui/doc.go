// Package ui renders the onboarding chrome on the server: buttons, badges,
// progress bars, step navigation, masked inputs, toasts and the page layout
// around them.
//
// Components are plain structs. A Renderer looks each one up in a component
// Registry, builds its view data and executes the matching pongo2 template
// from the embedded bundle. Themes resolved through go-theme can override any
// component template and contribute CSS variables.
package ui
