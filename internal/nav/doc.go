// Package nav turns the raw, declarative navigation sections of a site
// configuration into validated, read-only structures for the rendering host.
//
// A sidebar is written as an ordered list mixing bare document ids and
// objects:
//
//	- intro
//	- type: category
//	  label: Configuration
//	  collapsed: false
//	  items:
//	    - configuration/http-servers
//	    - type: doc
//	      id: configuration/stdio-servers
//	      label: STDIO
//
// Builder.Build converts that into a Tree of Entry and Category nodes,
// preserving author order and rejecting duplicate ids, empty categories and
// anything that is neither a string nor a well-formed object. Footer link
// groups and navbar items get the same treatment through BuildLinkGroups and
// BuildNavbar.
//
// Every failure is returned as a typed error (DuplicateIDError,
// EmptyCategoryError, MalformedEntryError, MalformedLinkError,
// MalformedNavbarItemError) carrying the path to the offending value, e.g.
// "tutorialSidebar[3].items[0]". The first failure wins.
package nav
