// Package menu models the Menu aggregate: a priced, displayable bundle of
// products (MenuProducts) belonging to a menu group.
//
// A menu's price must not exceed the sum of product price × quantity over its
// MenuProducts; services.MenuPriceRule checks that, and a violating menu is
// hidden. Hidden menus cannot be ordered.
package menu
