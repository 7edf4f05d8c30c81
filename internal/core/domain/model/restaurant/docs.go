// Package restaurant provides the restaurant that owns menus, tables and orders,
// plus the MenuItem and Table entities.
//
// Menu items supply the display name used on the kitchen display and the price
// captured into each line item. Tables point at the order currently seated there.
package restaurant
