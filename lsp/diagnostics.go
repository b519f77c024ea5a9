// Copyright 2024 The Funlet Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lsp

import (
	"fmt"

	protocol "github.com/tliron/glsp/protocol_3_16"

	"github.com/LuKuangChen/Learn-LSP/syntax"
)

const diagnosticSource = "funlet"

// diagnostics derives the complete diagnostic list for a document, capped
// at limit entries. The result replaces whatever was previously published
// for the document's URI; it is never merged.
//
// A failed parse contributes exactly one diagnostic, zero-width at the
// error position; it is exempt from limit, which caps only the unbound
// names. A successful parse contributes one diagnostic per identifier
// that resolved to no binder. The unbound diagnostics carry no explicit
// severity: the field is left unset so the client applies its own
// default.
func diagnostics(doc *Document, limit int) []protocol.Diagnostic {
	source := diagnosticSource
	diags := []protocol.Diagnostic{}
	if doc.ParseErr != nil {
		severity := protocol.DiagnosticSeverityError
		diags = append(diags, protocol.Diagnostic{
			Range:    zeroWidthRange(doc.ParseErr.Pos),
			Severity: &severity,
			Source:   &source,
			Message:  doc.ParseErr.Reason,
		})
	}
	for _, v := range doc.Table.Unbound() {
		if len(diags) >= limit {
			break
		}
		diags = append(diags, protocol.Diagnostic{
			Range:   toRange(syntax.SpanOf(v)),
			Source:  &source,
			Message: fmt.Sprintf("`%s` is not defined", v.Name),
		})
	}
	return diags
}

func toPosition(p syntax.Position) protocol.Position {
	return protocol.Position{
		Line:      protocol.UInteger(p.Line),
		Character: protocol.UInteger(p.Col),
	}
}

func fromPosition(p protocol.Position) syntax.Position {
	return syntax.Position{Line: int32(p.Line), Col: int32(p.Character)}
}

func toRange(s syntax.Span) protocol.Range {
	return protocol.Range{Start: toPosition(s.Start), End: toPosition(s.End)}
}

func zeroWidthRange(p syntax.Position) protocol.Range {
	pos := toPosition(p)
	return protocol.Range{Start: pos, End: pos}
}

// fullRange spans an entire document text, computed with the same
// line/column rule the parser's cursor uses.
func fullRange(text string) protocol.Range {
	end := protocol.Position{}
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			end.Line++
			end.Character = 0
		} else {
			end.Character++
		}
	}
	return protocol.Range{Start: protocol.Position{}, End: end}
}
