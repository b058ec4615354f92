// The MIT License (MIT)
//
// Copyright (c) 2019 West Damron
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// ccg provides a chart parser for Combinatory Categorial Grammars.
//
// A lexicon assigns categories (and optionally semantic terms) to tokens. The parser fills a
// CKY chart bottom-up by applying a fixed set of combinators to adjacent spans, unifying
// categories with variables as it goes. Judgements with equal surface expression and
// category are packed into one chart entry, whose forest holds every derivation; trees are
// only expanded on request.
//
//
// Supported Combinators:
//
//   * Forward and backward application (`>`, `<`)
//   * Forward and backward composition (`B>`, `B<`)
//   * Forward and backward type-raising of atomic categories (`T>`, `T<`), optional
//
//
// Categories may contain variables (`$X`), atomic variables (`@X`) and feature annotations
// (`NP[pl]`). Semantic terms are lambda terms, combined by application, composition and
// raising alongside the categories.
//
//
// Links:
//
// Combinatory categorial grammar: https://en.wikipedia.org/wiki/Combinatory_categorial_grammar
//
// CYK algorithm: https://en.wikipedia.org/wiki/CYK_algorithm
package ccg
