package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"

	"github.com/sells-group/dd-checklist/internal/checklist"
	"github.com/sells-group/dd-checklist/internal/i18n"
	"github.com/sells-group/dd-checklist/internal/model"
	"github.com/sells-group/dd-checklist/internal/resolver"
	"github.com/sells-group/dd-checklist/internal/rulebase"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Build a checklist through terminal prompts",
	RunE: func(cmd *cobra.Command, _ []string) error {
		p := &prompter{
			in:  bufio.NewScanner(cmd.InOrStdin()),
			out: cmd.OutOrStdout(),
		}
		gen := checklist.New(rulebase.New(), i18n.NewTable(), cfg.Output.Dir, nil)
		return runInteractive(p, gen)
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

func runInteractive(p *prompter, gen *checklist.Generator) error {
	p.banner("DUE DILIGENCE — DOCUMENT CHECKLIST GENERATOR")

	langChoice, err := p.choose("Language / Idioma:", []string{"EN — English", "PT — Português"})
	if err != nil {
		return err
	}
	lang := i18n.LanguageEN
	if strings.HasPrefix(langChoice, "PT") {
		lang = i18n.LanguagePT
	}

	en := lang == i18n.LanguageEN
	dealType, err := p.choose(pick(en, "Transaction type:", "Tipo de transação:"), enumStrings(model.DealTypes()))
	if err != nil {
		return err
	}
	sector, err := p.choose(pick(en, "Sector:", "Setor:"), enumStrings(model.Sectors()))
	if err != nil {
		return err
	}
	jurisdiction, err := p.choose(pick(en, "Jurisdiction:", "Jurisdição:"), enumStrings(model.Jurisdictions()))
	if err != nil {
		return err
	}
	target, err := p.askText(pick(en, "Target company name", "Nome da empresa-alvo"))
	if err != nil {
		return err
	}

	dc := model.DealContext{
		Target:       target,
		DealType:     model.DealType(dealType),
		Sector:       model.Sector(sector),
		Jurisdiction: model.Jurisdiction(jurisdiction),
		Language:     lang,
	}

	ck, err := gen.Resolve(dc)
	if err != nil {
		return err
	}
	p.preview(ck)

	addCustom, err := p.askYesNo(pick(en, "Add custom documents?", "Adicionar documentos personalizados?"))
	if err != nil {
		return err
	}
	if addCustom {
		custom, err := p.askCustomDocuments(en)
		if err != nil {
			return err
		}
		dc.Custom = custom
		if ck, err = gen.Resolve(dc); err != nil {
			return err
		}
		fmt.Fprintf(p.out, "\n  → %d custom document(s) added. New total: %d\n", len(custom), ck.Stats.Total)
	}

	confirm, err := p.askYesNo(pick(en, "Generate Excel file?", "Gerar ficheiro Excel?"))
	if err != nil {
		return err
	}
	if !confirm {
		fmt.Fprintln(p.out, "\n  Cancelled.")
		return nil
	}

	path, err := gen.Generate(dc)
	if err != nil {
		return err
	}
	p.banner(fmt.Sprintf("✔ File generated: %s", path))
	return nil
}

// truncate shortens s to at most max runes, appending "..." when cut, so
// accented Portuguese names never split mid-rune.
func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-3]) + "..."
}

func pick(en bool, enText, ptText string) string {
	if en {
		return enText
	}
	return ptText
}

func enumStrings[T ~string](values []T) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// prompter drives the numbered-menu terminal flow. Invalid input re-prompts;
// exhausted input surfaces as an error so scripted runs fail fast.
type prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func (p *prompter) banner(text string) {
	line := strings.Repeat("=", 60)
	fmt.Fprintf(p.out, "\n%s\n  %s\n%s\n", line, text, line)
}

func (p *prompter) readLine() (string, error) {
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", eris.Wrap(err, "interactive: read input")
		}
		return "", eris.New("interactive: input closed")
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// choose displays a numbered menu and returns the chosen option.
func (p *prompter) choose(prompt string, options []string) (string, error) {
	fmt.Fprintf(p.out, "\n%s\n", prompt)
	for i, opt := range options {
		fmt.Fprintf(p.out, "  [%d] %s\n", i+1, opt)
	}
	for {
		fmt.Fprint(p.out, "  > ")
		raw, err := p.readLine()
		if err != nil {
			return "", err
		}
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 && n <= len(options) {
			fmt.Fprintf(p.out, "  ✔ %s\n", options[n-1])
			return options[n-1], nil
		}
		fmt.Fprintf(p.out, "  ✗ Please enter a number between 1 and %d.\n", len(options))
	}
}

func (p *prompter) askText(prompt string) (string, error) {
	for {
		fmt.Fprintf(p.out, "\n%s: ", prompt)
		val, err := p.readLine()
		if err != nil {
			return "", err
		}
		if val != "" {
			return val, nil
		}
		fmt.Fprintln(p.out, "  ✗ This field cannot be empty.")
	}
}

func (p *prompter) askYesNo(prompt string) (bool, error) {
	for {
		fmt.Fprintf(p.out, "\n%s (y/n): ", prompt)
		val, err := p.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(val) {
		case "y", "yes", "s", "sim":
			return true, nil
		case "n", "no", "nao", "não":
			return false, nil
		}
		fmt.Fprintln(p.out, "  ✗ Please answer y or n.")
	}
}

func (p *prompter) preview(ck *resolver.Checklist) {
	line := strings.Repeat("=", 90)
	fmt.Fprintf(p.out, "\n%s\n  %43s\n%s\n", line, "PREVIEW", line)
	fmt.Fprintf(p.out, "  %-14s %-50s %-10s %s\n", "Category", "Document", "Required", "Priority")
	fmt.Fprintln(p.out, strings.Repeat("-", 90))
	for _, d := range ck.Documents {
		name := truncate(d.Name, 50)
		required := "No"
		if d.Required {
			required = "Yes"
		}
		fmt.Fprintf(p.out, "  %-14s %-50s %-10s %s\n", d.Category, name, required, d.Priority)
	}
	fmt.Fprintln(p.out, strings.Repeat("-", 90))
	fmt.Fprintf(p.out, "  Total: %d documents\n%s\n", ck.Stats.Total, line)
}

func (p *prompter) askCustomDocuments(en bool) ([]model.CustomDocument, error) {
	var custom []model.CustomDocument
	for {
		cat, err := p.choose(pick(en, "  Category:", "  Categoria:"), enumStrings(model.Categories()))
		if err != nil {
			return nil, err
		}
		name, err := p.askText(pick(en, "  Document name", "  Nome do documento"))
		if err != nil {
			return nil, err
		}
		required, err := p.askYesNo(pick(en, "  Required?", "  Obrigatório?"))
		if err != nil {
			return nil, err
		}
		prio, err := p.choose("  Priority:", enumStrings(model.Priorities()))
		if err != nil {
			return nil, err
		}
		custom = append(custom, model.CustomDocument{
			Category: cat,
			Name:     name,
			Required: required,
			Priority: prio,
		})
		fmt.Fprintf(p.out, "  ✔ Added: %s\n", name)

		more, err := p.askYesNo(pick(en, "  Add another document?", "  Adicionar outro documento?"))
		if err != nil {
			return nil, err
		}
		if !more {
			return custom, nil
		}
	}
}
