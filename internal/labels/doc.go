// Package labels turns pull-request labels into a CI build matrix.
//
// Label names follow the "<package>:<bump>" convention, where bump is one of
// major, minor or patch. Labels that do not follow the convention are skipped
// without error so a badly labelled pull request never breaks the pipeline;
// it only results in an empty matrix.
package labels
