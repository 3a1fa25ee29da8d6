// Package icons defines the icon identifiers used on the portfolio page and
// the Lucide glyphs that render them.
//
// Content refers to icons by stable id so copy can be edited without
// touching markup. The page renders each id as an inline SVG.
package icons
