// Package figmacodegen turns Figma designs into code: a CSS stylesheet with
// HTML markup, Tailwind JSX, and a reverse index from Tailwind class tokens
// to the elements that carry them. Values bound to Figma variables come out
// as CSS custom properties, so the output follows the design system instead
// of freezing its current values.
//
// cmd/figma-codegen wraps this package; build tooling can call it directly.
//
// # Import
//
// The package name drops the hyphen of the module path:
//
//	import "github.com/hellenic-development/figma-codegen" // package figmacodegen
//
// # Quick start
//
//	result, err := figmacodegen.Run(figmacodegen.Options{
//	    AccessToken: os.Getenv("FIGMA_TOKEN"),
//	    FileURL:     "https://www.figma.com/design/ABC123/My-Design?node-id=1-2",
//	})
//	if err == nil {
//	    _, err = figmacodegen.WriteFiles(result, "generated")
//	}
//	if err != nil {
//	    return err
//	}
//
// # Offline input
//
// Set [Options.FilePath] (and optionally [Options.VariablesPath]) to generate
// from file and variables API responses saved to disk. No token is needed.
// [Generate] runs the same pipeline on responses already in memory.
//
// # Logging
//
// Progress messages and skipped-node warnings go to [Options.Logger]; nil
// keeps the run quiet. Any type with Infof, Warnf and Errorf methods works,
// for example one forwarding to log/slog:
//
//	type slogLogger struct{ l *slog.Logger }
//
//	func (s slogLogger) Infof(f string, a ...any)  { s.l.Info(fmt.Sprintf(f, a...)) }
//	func (s slogLogger) Warnf(f string, a ...any)  { s.l.Warn(fmt.Sprintf(f, a...)) }
//	func (s slogLogger) Errorf(f string, a ...any) { s.l.Error(fmt.Sprintf(f, a...)) }
//
// # Selection
//
// [Options.Select] narrows generation to the elements whose slash-joined
// layer path matches a glob, for example "Page/**/Button*". When several
// elements match they are rendered side by side under one wrapper.
//
// # Drift checks
//
// [Check] compares a result with files written by an earlier run and reports
// a patch for every file whose content changed.
package figmacodegen
