package service

import (
	"context"
	"fmt"

	"github.com/insightai/site/internal/model"
)

// Message namespaces holding legal documents
const (
	NamespaceProductLegal  = "legal"
	NamespacePlatformLegal = "platformLegal"
)

// Legal loads the resolved legal document stored under namespace.slug
func (l *Loader) Legal(ctx context.Context, locale model.Locale, namespace string, slug model.LegalPageSlug) (*model.LegalDocument, error) {
	tree, err := l.Load(ctx, locale)
	if err != nil {
		return nil, err
	}
	return LegalDocumentFrom(tree, namespace, slug)
}

// LegalDocumentFrom extracts a legal document from a message tree. Sections
// may be stored as an object (rendered in key order) or as a list.
func LegalDocumentFrom(tree any, namespace string, slug model.LegalPageSlug) (*model.LegalDocument, error) {
	node, ok := model.Lookup(tree, namespace+"."+string(slug))
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s", ErrLegalDocumentNotFound, namespace, slug)
	}
	obj, ok := node.(*model.Object)
	if !ok {
		return nil, fmt.Errorf("%w: %s.%s is not an object", ErrLegalDocumentNotFound, namespace, slug)
	}

	doc := &model.LegalDocument{Slug: slug}
	doc.Date, _ = model.LookupString(obj, "date")
	doc.MetaDescription, _ = model.LookupString(obj, "meta.description")

	if title, ok := model.LookupString(obj, "meta.title"); ok {
		doc.MetaTitle = title
	} else if title, ok := model.LookupString(tree, "common.legal."+string(slug)); ok {
		doc.MetaTitle = title
	}

	sections, _ := obj.Get("sections")
	switch s := sections.(type) {
	case *model.Object:
		for _, m := range s.Members() {
			if section, ok := sectionFrom(m.Value); ok {
				doc.Sections = append(doc.Sections, section)
			}
		}
	case []any:
		for _, item := range s {
			if section, ok := sectionFrom(item); ok {
				doc.Sections = append(doc.Sections, section)
			}
		}
	}

	return doc, nil
}

func sectionFrom(value any) (model.LegalSection, bool) {
	obj, ok := value.(*model.Object)
	if !ok {
		return model.LegalSection{}, false
	}

	var section model.LegalSection
	section.Title, _ = model.LookupString(obj, "title")
	section.Content, _ = model.LookupString(obj, "content")

	if items, ok := obj.Get("items"); ok {
		if list, ok := items.([]any); ok {
			for _, item := range list {
				if s, ok := item.(string); ok {
					section.Items = append(section.Items, s)
				}
			}
		}
	}
	return section, true
}
