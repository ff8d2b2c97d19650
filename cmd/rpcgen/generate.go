package main

import (
	"strings"

	j "github.com/dave/jennifer/jen"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NoLower keeps the inner capitals of lowerCamel method names.
var toTitle = cases.Title(language.English, cases.NoLower)

func goName(method string) string {
	return toTitle.String(method)
}

func generateParam(p Param) (param, arg j.Code) {
	switch {
	case !p.Optional:
		return j.Id(p.Name).Id(p.Type), j.Id(p.Name)
	case strings.HasPrefix(p.Type, "[]"):
		return j.Id(p.Name).Id(p.Type), j.Id("optionalSlice").Call(j.Id(p.Name))
	default:
		return j.Id(p.Name).Op("*").Id(p.Type), j.Id("optional").Call(j.Id(p.Name))
	}
}

func generateMethod(receiver string, m Method) j.Code {
	name := goName(m.Name)
	params := []j.Code{j.Id("ctx").Qual("context", "Context")}
	args := []j.Code{j.Id("ctx"), j.Id(name), j.Op("&").Id("result")}
	for _, p := range m.Params {
		param, arg := generateParam(p)
		params = append(params, param)
		args = append(args, arg)
	}
	doc := name
	if m.Doc != "" {
		doc += " " + m.Doc
	}
	fn := j.Func().Params(j.Id("c").Id(receiver)).Id(name).Params(params...).Params(j.Id(m.Result), j.Error()).Block(
		j.Var().Id("result").Id(m.Result),
		j.Err().Op(":=").Id("c").Dot("CallResult").Call(args...),
		j.Return(j.Id("result"), j.Err()),
	)
	return j.Comment(doc).Line().Add(fn)
}

func generateFile(cat *Catalogue) *j.File {
	f := j.NewFile(cat.Package)
	f.HeaderComment("Code generated by rpcgen. DO NOT EDIT.")
	f.Comment("RPC methods.")
	f.Const().DefsFunc(func(g *j.Group) {
		for _, m := range cat.Methods {
			g.Id(goName(m.Name)).Op("=").Lit(m.Name)
		}
	})
	for _, m := range cat.Methods {
		f.Line()
		f.Add(generateMethod(cat.Receiver, m))
	}
	return f
}
