// Package models defines the core domain models for WebNest project estimates.
//
// # Catalog Models
//
// Reference data offered by the project wizard. Loaded once, never mutated:
//   - ProjectType: what is being built, carries the base price
//   - Industry: scales the base price by a multiplier
//   - Feature, AddOn: flat-priced extras
//   - TeamRole / TeamRoleLevel: people that can be added to the project team
//   - Theme: descriptive only, no price effect
//   - StarterPackage: a pre-priced bundle offered to the student tier
//
// # Derived Models
//
// Budget and Estimate are always computed from a selection and never stored
// on their own.
//
// # Persisted Models
//
// Project is the record the project service stores once a wizard is submitted.
//
// # Design Principles
//
//  1. **Money is local currency**: prices are float64 in local units (INR); USD
//     figures are either snapshotted prices or derived with a fixed rate
//  2. **Selections reference ids**: a selection stores catalog ids as opaque
//     strings, except team members which snapshot their price
//  3. **No pointers between models**: relationships use ID strings
package models
