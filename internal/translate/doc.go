// Package translate maps recognized source strings to replacement strings
// in the target language.
//
// Translation is a best-effort collaborator: the pipeline substitutes the
// original text whenever a translator fails, so a broken network or an
// unsupported language pair degrades output quality but never stops a page
// from compositing. No retries are performed here.
//
// Two implementations ship with the package: Identity, which returns input
// unchanged, and GoogleWeb, which calls the public Google Translate web
// endpoint.
package translate
