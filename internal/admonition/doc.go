// Package admonition converts admonition blocks embedded in documentation
// source into backend-specific markup.
//
// # Syntax
//
// An admonition starts with a marker line followed by an indented body:
//
//	!!! warning "Be careful"
//	    Do not push the red button.
//	    It is dangerous.
//
// Three markers are recognised:
//
//   - !!!  standard admonition
//   - ???  collapsible admonition
//   - ???+ collapsible admonition, open by default
//
// The body extends over every following line that is blank or indented by
// four spaces or one tab.
//
// # Pipeline
//
// Scan locates blocks in document order, Normalize strips one indentation
// level from the captured body, and a Renderer encodes the block for one of
// three backends:
//
//	pandoc  blockquote with a bold header line
//	slate   <aside class="..."> element
//	hugo    {{% admonition %}} shortcode
//
// A Processor ties the pieces together for one run:
//
//	proc := admonition.NewProcessor("pandoc", admonition.WithLogger(logger))
//	out, result := proc.Process(text)
//
// A Processor configured with an unknown backend is inactive and returns
// every document unchanged.
package admonition
