// Package dsl reads workspace definitions from TOML or YAML files.
//
// A definition lists people, software systems with their containers and
// components, relationships, deployment nodes, views and styles. [Load]
// picks the decoder from the file extension and builds a
// [workspace.Workspace] through the model and view APIs, so a definition is
// subject to exactly the same validation as code:
//
//	ws, err := dsl.Load("factory.toml")
//	if errors.Is(err, errors.ErrCodeNameConflict) { ... }
//
// # Element Paths
//
// Relationships, deployments and views refer to elements by path. A person
// or software system is named directly, a container as "System/Container"
// and a component as "System/Container/Component". Deployment nodes are
// addressed as "Environment::Node/Child". Names containing "/" or "::"
// cannot be addressed by path.
//
// # Views
//
// Each view names its kind and key. The include list adds elements by path;
// the entry "*" adds the default contents for the kind: every person and
// system for landscapes, the scope and its neighbours for context views,
// every container or component of the scope plus their neighbours for
// container and component views, and every deployment node for deployment
// views. Exclude entries are removed afterwards.
package dsl
