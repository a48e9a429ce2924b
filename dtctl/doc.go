// Package dtctl owns the planner's single current dt value and its
// on-change observer registry. The pair optimizer bounds its search by the
// current dt, and the prediction manager's ghost-tree rescaling path
// subscribes here so a dt change propagates into the preview.
package dtctl
