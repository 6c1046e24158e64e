// Package srcscan derives manifest descriptor reports from Go source
// without executing it. It loads packages with go/packages, walks the
// exported named types, and maps go/types shapes to the manifest wire
// format.
package srcscan

import (
	"context"
	"fmt"
	"go/types"

	"golang.org/x/tools/go/packages"
)

// Options configures a scan.
type Options struct {
	// Patterns are go/packages load patterns (e.g. "./...").
	Patterns []string

	// Types restricts extraction to the named types.
	// If empty, all exported named types are extracted.
	Types []string

	// Dir is the working directory for package loading.
	// Empty means the process working directory.
	Dir string
}

// Report is the result of a scan: package metadata plus one wire-format
// descriptor node per extracted type.
type Report struct {
	Package PackageInfo `json:"package"`
	Types   []TypeEntry `json:"types"`
}

// PackageInfo describes the scanned package.
type PackageInfo struct {
	Path string `json:"path"`
	Name string `json:"name"`
}

// TypeEntry is one extracted named type.
type TypeEntry struct {
	Name       string `json:"name"`
	Descriptor *Node  `json:"descriptor"`
}

// Node mirrors the manifest wire format: a kind discriminator plus the
// fields that kind uses.
type Node struct {
	Kind string  `json:"kind"`
	Name string  `json:"name,omitempty"`
	Type string  `json:"type,omitempty"`
	Args []*Node `json:"args,omitempty"`
}

// maxDepth bounds descriptor nesting so recursive types terminate.
const maxDepth = 16

// Scan loads the packages matched by opts.Patterns and extracts
// descriptor nodes for their named types.
func Scan(ctx context.Context, opts Options) (*Report, error) {
	if len(opts.Patterns) == 0 {
		return nil, fmt.Errorf("no patterns specified")
	}

	cfg := &packages.Config{
		Context: ctx,
		Dir:     opts.Dir,
		Mode: packages.NeedName |
			packages.NeedFiles |
			packages.NeedCompiledGoFiles |
			packages.NeedImports |
			packages.NeedTypes |
			packages.NeedSyntax |
			packages.NeedTypesInfo,
	}

	pkgs, err := packages.Load(cfg, opts.Patterns...)
	if err != nil {
		return nil, fmt.Errorf("failed to load packages: %w", err)
	}
	for _, pkg := range pkgs {
		if len(pkg.Errors) > 0 {
			return nil, fmt.Errorf("package %s has errors: %v", pkg.PkgPath, pkg.Errors)
		}
	}
	if len(pkgs) == 0 {
		return nil, fmt.Errorf("no packages found")
	}

	report := &Report{
		Package: PackageInfo{
			Path: pkgs[0].PkgPath,
			Name: pkgs[0].Name,
		},
	}

	if len(opts.Types) > 0 {
		for _, name := range opts.Types {
			entry, err := extractNamed(pkgs, name)
			if err != nil {
				return nil, err
			}
			report.Types = append(report.Types, entry)
		}
		return report, nil
	}

	for _, pkg := range pkgs {
		scope := pkg.Types.Scope()
		for _, name := range scope.Names() {
			obj := scope.Lookup(name)
			if !obj.Exported() {
				continue
			}
			typeName, ok := obj.(*types.TypeName)
			if !ok {
				continue
			}
			report.Types = append(report.Types, TypeEntry{
				Name:       typeName.Name(),
				Descriptor: nodeFor(typeName.Type(), 0),
			})
		}
	}
	return report, nil
}

// extractNamed finds one named type across the loaded packages.
func extractNamed(pkgs []*packages.Package, name string) (TypeEntry, error) {
	for _, pkg := range pkgs {
		obj := pkg.Types.Scope().Lookup(name)
		if obj == nil {
			continue
		}
		typeName, ok := obj.(*types.TypeName)
		if !ok {
			continue
		}
		return TypeEntry{
			Name:       typeName.Name(),
			Descriptor: nodeFor(typeName.Type(), 0),
		}, nil
	}
	return TypeEntry{}, fmt.Errorf("type %s not found in any package", name)
}

// basicKinds maps go/types basic kinds to the manifest primitive
// singleton names. Basics with no primitive counterpart (string, the
// unsized numerics) fall through to class nodes.
var basicKinds = map[types.BasicKind]string{
	types.Uint8:   "Byte",
	types.Int16:   "Short",
	types.Int32:   "Char",
	types.Int:     "Int",
	types.Int64:   "Long",
	types.Float32: "Float",
	types.Float64: "Double",
	types.Bool:    "Boolean",
}

// nodeFor maps a go/types type to a wire-format node.
func nodeFor(t types.Type, depth int) *Node {
	if depth > maxDepth {
		return &Node{Kind: "phantom", Name: "Any"}
	}

	switch t := t.(type) {
	case *types.Basic:
		if name, ok := basicKinds[t.Kind()]; ok {
			return &Node{Kind: "primitive", Name: name}
		}
		return &Node{Kind: "class", Type: t.String()}

	case *types.Slice:
		return &Node{
			Kind: "class",
			Type: types.TypeString(t, qualifier),
			Args: []*Node{nodeFor(t.Elem(), depth+1)},
		}

	case *types.Array:
		return &Node{
			Kind: "class",
			Type: types.TypeString(t, qualifier),
			Args: []*Node{nodeFor(t.Elem(), depth+1)},
		}

	case *types.Map:
		return &Node{
			Kind: "class",
			Type: types.TypeString(t, qualifier),
			Args: []*Node{nodeFor(t.Key(), depth+1), nodeFor(t.Elem(), depth+1)},
		}

	case *types.Pointer:
		return &Node{
			Kind: "class",
			Type: types.TypeString(t, qualifier),
			Args: []*Node{nodeFor(t.Elem(), depth+1)},
		}

	case *types.Chan:
		return &Node{
			Kind: "class",
			Type: types.TypeString(t, qualifier),
			Args: []*Node{nodeFor(t.Elem(), depth+1)},
		}

	case *types.Interface:
		if t.Empty() {
			return &Node{Kind: "phantom", Name: "Any"}
		}
		return &Node{Kind: "class", Type: types.TypeString(t, qualifier)}

	case *types.Named:
		node := &Node{
			Kind: "class",
			Type: namedTypeString(t),
		}
		if args := t.TypeArgs(); args != nil {
			for i := 0; i < args.Len(); i++ {
				node.Args = append(node.Args, nodeFor(args.At(i), depth+1))
			}
		}
		return node

	case *types.Alias:
		return nodeFor(types.Unalias(t), depth+1)

	case *types.TypeParam:
		// Uninstantiated type parameters have no runtime representation;
		// the wildcard form records the constraint as the upper bound.
		return &Node{Kind: "phantom", Name: "Any"}

	default:
		return &Node{Kind: "class", Type: types.TypeString(t, qualifier)}
	}
}

// qualifier renders package names short, matching reflect.Type.String.
func qualifier(p *types.Package) string {
	return p.Name()
}

// namedTypeString renders a named type as "pkg.Name" without its type
// argument list, again matching reflect.Type.String for the erased type.
func namedTypeString(t *types.Named) string {
	obj := t.Obj()
	if obj.Pkg() == nil {
		return obj.Name()
	}
	return obj.Pkg().Name() + "." + obj.Name()
}
