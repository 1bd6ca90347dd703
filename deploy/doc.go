// Package deploy resolves the deployment environment and drives the
// per-directory upload sequence.
//
// A Target is built once per run from the branch name and process
// environment: the master branch deploys to the production bucket under
// "v1/{owner}/{name}/", any other branch to the development bucket under
// "v1/{owner}/{name}/{branch}/". A Plan maps each affected top-level
// directory to an upload spec, and Deploy runs the uploads strictly
// sequentially, aborting on the first failure.
package deploy
