package figmacodegen

import (
	"errors"
	"fmt"
	"strings"

	"github.com/hellenic-development/figma-codegen/pkg/classindex"
	"github.com/hellenic-development/figma-codegen/pkg/emit"
	"github.com/hellenic-development/figma-codegen/pkg/extractor"
	"github.com/hellenic-development/figma-codegen/pkg/figma"
	"github.com/hellenic-development/figma-codegen/pkg/formatter"
	"github.com/hellenic-development/figma-codegen/pkg/nodetree"
	"github.com/hellenic-development/figma-codegen/pkg/render"
	"github.com/hellenic-development/figma-codegen/pkg/variables"
)

// ErrNoMatch is returned when [Options.Select] matches no element.
var ErrNoMatch = errors.New("no element matches the selection")

// Options configures the generation.
type Options struct {
	AccessToken string
	FileURL     string   // Figma file URL
	NodeIDs     []string // empty = node IDs from the URL, else the entire file
	APIBaseURL  string   // empty = the public Figma API

	FilePath      string // saved file response; replaces the API when set
	VariablesPath string // saved local variables response, optional

	Select        string // glob over element paths, optional
	ComponentName string // wraps the JSX in an exported function component
	Logger        Logger // nil = no logging
}

// Logger receives progress messages. A nil Logger means silent operation.
type Logger interface {
	Infof(format string, args ...any)
	Warnf(format string, args ...any)
	Errorf(format string, args ...any)
}

// Input is the design data one generation works on.
type Input struct {
	File      *figma.FileResponse
	Variables *figma.LocalVariablesResponse // nil = every binding stays unbound
	// Roots are the nodes to render; empty renders the whole document.
	Roots []*figma.Node
}

// Result contains the generation output.
type Result struct {
	FileName  string
	CSS       string // stylesheet, :root block first
	HTML      string
	JSX       string
	Variables []emit.Variable
	Index     classindex.Index
	Markdown  string // formatted markdown report
	Elements  int
}

func (o *Options) logInfo(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Infof(f, a...)
	}
}

func (o *Options) logWarn(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Warnf(f, a...)
	}
}

func (o *Options) logError(f string, a ...any) {
	if o.Logger != nil {
		o.Logger.Errorf(f, a...)
	}
}

// Run loads the design, from disk or from the Figma API, and generates code
// for it.
func Run(opts Options) (*Result, error) {
	var (
		in  Input
		err error
	)
	if opts.FilePath != "" {
		in, err = loadLocal(&opts)
	} else {
		in, err = fetchRemote(&opts)
	}
	if err != nil {
		return nil, err
	}

	return Generate(in, opts)
}

func loadLocal(opts *Options) (Input, error) {
	opts.logInfo("Reading file from %s...", opts.FilePath)
	file, err := figma.LoadFile(opts.FilePath)
	if err != nil {
		return Input{}, fmt.Errorf("load file: %w", err)
	}
	opts.logInfo("File: %s", file.Name)

	in := Input{File: file}
	if opts.VariablesPath != "" {
		opts.logInfo("Reading variables from %s...", opts.VariablesPath)
		in.Variables, err = figma.LoadVariables(opts.VariablesPath)
		if err != nil {
			return Input{}, fmt.Errorf("load variables: %w", err)
		}
	}

	if len(opts.NodeIDs) > 0 {
		in.Roots, err = findRoots(opts, figma.LibraryFromFile(file), opts.NodeIDs)
		if err != nil {
			return Input{}, err
		}
	}
	return in, nil
}

func fetchRemote(opts *Options) (Input, error) {
	// Extract file key from URL.
	opts.logInfo("Extracting file key from URL...")
	fileKey, err := figma.ExtractFileKey(opts.FileURL)
	if err != nil {
		return Input{}, fmt.Errorf("extract file key: %w", err)
	}
	opts.logInfo("File key: %s", fileKey)

	// Extract node IDs from URL or use the explicit ones.
	targetNodeIDs := opts.NodeIDs
	if len(targetNodeIDs) > 0 {
		opts.logInfo("Using %d explicit node ID(s)", len(targetNodeIDs))
	} else {
		opts.logInfo("Checking URL for node IDs...")
		targetNodeIDs, err = figma.ExtractNodeIDs(opts.FileURL)
		if err != nil {
			return Input{}, fmt.Errorf("extract node IDs from URL: %w", err)
		}
		if len(targetNodeIDs) > 0 {
			opts.logInfo("Found %d node(s) in URL", len(targetNodeIDs))
		} else {
			opts.logInfo("No node IDs found, will generate the entire file")
		}
	}

	opts.logInfo("Authenticating with Figma API...")
	client := figma.NewClient(opts.AccessToken)
	if opts.APIBaseURL != "" {
		client.WithBaseURL(opts.APIBaseURL)
	}

	// The whole file is needed even for node-scoped runs: instances resolve
	// their main components and sets through it.
	opts.logInfo("Fetching file data from Figma...")
	file, err := client.GetFile(fileKey)
	if err != nil {
		return Input{}, fmt.Errorf("fetch file: %w", err)
	}
	opts.logInfo("File: %s", file.Name)
	in := Input{File: file}

	if len(targetNodeIDs) > 0 {
		opts.logInfo("Fetching %d node(s) from Figma...", len(targetNodeIDs))
		nodesResp, err := client.GetFileNodes(fileKey, targetNodeIDs)
		if err != nil {
			return Input{}, fmt.Errorf("fetch nodes: %w", err)
		}
		for _, id := range targetNodeIDs {
			nd, ok := nodesResp.Nodes[id]
			if !ok {
				opts.logWarn("Node %s not found, skipping", id)
				continue
			}
			doc := nd.Document // copy
			in.Roots = append(in.Roots, &doc)
		}
		if len(in.Roots) == 0 {
			return Input{}, fmt.Errorf("fetch nodes: none of %s found", strings.Join(targetNodeIDs, ", "))
		}
		opts.logInfo("Retrieved %d node(s)", len(in.Roots))
	}

	// Variables need the file_variables:read scope. Without them every
	// binding degrades to its literal value.
	opts.logInfo("Fetching local variables...")
	in.Variables, err = client.GetLocalVariables(fileKey)
	if err != nil {
		opts.logWarn("Variables unavailable, emitting literal values: %v", err)
		in.Variables = nil
	} else {
		opts.logInfo("Retrieved %d variable(s)", len(in.Variables.Meta.Variables))
	}

	return in, nil
}

func findRoots(opts *Options, lib *figma.Library, ids []string) ([]*figma.Node, error) {
	var roots []*figma.Node
	for _, id := range ids {
		node := lib.Node(id)
		if node == nil {
			opts.logWarn("Node %s not found, skipping", id)
			continue
		}
		roots = append(roots, node)
	}
	if len(roots) == 0 {
		return nil, fmt.Errorf("find nodes: none of %s found", strings.Join(ids, ", "))
	}
	return roots, nil
}

// Generate runs the pipeline on design data already in memory. Per-node
// failures are logged and skipped; only an unusable input or an empty
// selection is an error.
func Generate(in Input, opts Options) (*Result, error) {
	if in.File == nil {
		return nil, errors.New("generate: no file")
	}

	var log warner
	if opts.Logger != nil {
		log = opts.Logger
	}

	lib := figma.LibraryFromFile(in.File)
	store := variables.NewStore(in.Variables)
	resolver := variables.NewResolver(store, log)
	ext := extractor.New(resolver, lib, log)

	opts.logInfo("Building element tree...")
	root, err := buildTree(&opts, in, lib, log)
	if err != nil {
		return nil, err
	}
	elements := root.Count()
	opts.logInfo("Collected %d element(s)", elements)

	vars := emit.NewVariableMap()
	ropts := render.Options{
		Extractor:     ext,
		Vars:          vars,
		Log:           log,
		ComponentName: opts.ComponentName,
	}

	opts.logInfo("Rendering CSS and HTML...")
	html := render.HTML(root, ropts)

	opts.logInfo("Rendering Tailwind JSX...")
	jsx := render.JSX(root, ropts)

	opts.logInfo("Indexing class tokens...")
	index := classindex.FromTree(jsx.Tree)

	// The :root block is rebuilt after the JSX pass so it declares every
	// variable either target references.
	stylesheet := render.Stylesheet(vars, html.Rules)

	result := &Result{
		FileName:  in.File.Name,
		CSS:       stylesheet,
		HTML:      html.Markup,
		JSX:       jsx.Markup,
		Variables: vars.Entries(),
		Index:     index,
		Elements:  elements,
	}

	opts.logInfo("Generating markdown report...")
	result.Markdown = formatter.ToMarkdown(formatter.Report{
		Title:      result.FileName,
		Variables:  result.Variables,
		Stylesheet: result.CSS,
		HTML:       result.HTML,
		JSX:        result.JSX,
		Index:      result.Index,
		Elements:   result.Elements,
	})

	if len(result.Variables) == 0 && in.Variables != nil && store.Len() > 0 {
		opts.logWarn("File defines %d variable(s) but none are bound in the rendered nodes", store.Len())
	}

	return result, nil
}

func buildTree(opts *Options, in Input, lib *figma.Library, log warner) (*nodetree.Element, error) {
	var root *nodetree.Element
	switch len(in.Roots) {
	case 0:
		root = nodetree.Build(&in.File.Document, lib, log)
	case 1:
		root = nodetree.Build(in.Roots[0], lib, log)
	default:
		children := make([]*nodetree.Element, 0, len(in.Roots))
		for _, n := range in.Roots {
			if el := nodetree.Build(n, lib, log); el != nil {
				children = append(children, el)
			}
		}
		root = nodetree.Group(in.File.Name, children)
	}

	if opts.Select == "" {
		return root, nil
	}

	matches, err := nodetree.Select(root, opts.Select)
	if err != nil {
		return nil, fmt.Errorf("select: %w", err)
	}
	switch len(matches) {
	case 0:
		opts.logError("Nothing matches %q", opts.Select)
		return nil, fmt.Errorf("select %q: %w", opts.Select, ErrNoMatch)
	case 1:
		opts.logInfo("Selected %s", matches[0].Path())
		return matches[0], nil
	default:
		opts.logInfo("Selected %d elements", len(matches))
		return nodetree.Group("Selection", matches), nil
	}
}

// warner is the one-method view of a Logger the subpackages accept.
type warner interface {
	Warnf(format string, args ...any)
}

// ParseNodeIDs parses a comma-separated string of node IDs and returns a slice.
// URL-encoded IDs ("1-2") are normalized to the API form ("1:2").
func ParseNodeIDs(nodeIDsStr string) []string {
	parts := strings.Split(nodeIDsStr, ",")
	result := make([]string, 0, len(parts))

	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, strings.ReplaceAll(trimmed, "-", ":"))
		}
	}

	return result
}
