/*
Author: KleaSCM
Email: KleaSCM@gmail.com
File: generate.go
Description: Output block generator for BlockLens. Simple keyed dispatch over the
closed layout pattern enum: each pattern selects a markup template and the
structure summary parameterizes it. No decision logic beyond the table lookup.
*/

package generate

import (
	"bytes"
	"fmt"
	"text/template"

	"github.com/kleascm/blocklens/pkg/interfaces"
)

// Block is a rendered output template for one analyzed region.
type Block struct {
	Name   string `json:"name"`
	Markup string `json:"markup"`
}

// templateParams is what every pattern template receives.
type templateParams struct {
	BlockName       string
	Rows            int
	Columns         int
	HasImages       bool
	HasLinks        bool
	FirstChildImage bool
	AccordionItems  int
}

var patternTemplates = map[interfaces.LayoutPattern]string{
	interfaces.PatternGrid: `<div class="{{.BlockName}}">
{{- range $i := iterate .Rows}}
  <div class="{{$.BlockName}}-item">{{if $.HasImages}}<img src="" alt="">{{end}}</div>
{{- end}}
</div>`,
	interfaces.PatternColumns: `<div class="{{.BlockName}}">
{{- range $i := iterate .Columns}}
  <div class="{{$.BlockName}}-col"></div>
{{- end}}
</div>`,
	interfaces.PatternHero: `<div class="{{.BlockName}}">
  <img src="" alt="">
  <h1></h1>
{{- if .HasLinks}}
  <a class="{{.BlockName}}-cta" href=""></a>
{{- end}}
</div>`,
	interfaces.PatternMediaText: `<div class="{{.BlockName}}">
{{- if .FirstChildImage}}
  <img src="" alt="">
  <div class="{{.BlockName}}-copy"></div>
{{- else}}
  <div class="{{.BlockName}}-copy"></div>
  <img src="" alt="">
{{- end}}
</div>`,
	interfaces.PatternList: `<ul class="{{.BlockName}}">
  <li>{{if .HasImages}}<img src="" alt="">{{end}}</li>
</ul>`,
	interfaces.PatternAccordion: `<div class="{{.BlockName}}">
{{- range $i := iterate .AccordionItems}}
  <h3 class="{{$.BlockName}}-label"></h3>
  <div class="{{$.BlockName}}-panel"></div>
{{- end}}
</div>`,
	interfaces.PatternTextOnly: `<div class="{{.BlockName}}">
  <h2></h2>
  <p></p>
</div>`,
	interfaces.PatternSingleImage: `<figure class="{{.BlockName}}">
  <img src="" alt="">
</figure>`,
	interfaces.PatternUnknown: `<div class="{{.BlockName}}"></div>`,
}

var funcs = template.FuncMap{
	"iterate": func(n int) []int {
		out := make([]int, n)
		for i := range out {
			out[i] = i
		}
		return out
	},
}

// ForPattern renders the output block for a layout analysis. Patterns outside
// the dispatch table fall back to the generic block template.
func ForPattern(analysis interfaces.LayoutAnalysis) (Block, error) {
	text, ok := patternTemplates[analysis.Pattern]
	if !ok {
		text = patternTemplates[interfaces.PatternUnknown]
	}

	tmpl, err := template.New(string(analysis.Pattern)).Funcs(funcs).Parse(text)
	if err != nil {
		return Block{}, fmt.Errorf("failed to parse template for %s: %w", analysis.Pattern, err)
	}

	s := analysis.Structure
	params := templateParams{
		BlockName:       analysis.BlockName,
		Rows:            s.RowCount,
		Columns:         s.ColumnCount,
		HasImages:       s.HasImages,
		HasLinks:        s.HasLinks,
		FirstChildImage: len(s.ChildSignatures) > 0 && s.ChildSignatures[0] == interfaces.SignatureImage,
		AccordionItems:  s.RowCount / 2,
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, params); err != nil {
		return Block{}, fmt.Errorf("failed to render template for %s: %w", analysis.Pattern, err)
	}
	return Block{Name: analysis.BlockName, Markup: buf.String()}, nil
}
