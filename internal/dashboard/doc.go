// Package dashboard serves the sales dashboard and the customer page.
//
// Each request loads the visitor's workspace, applies one reducer step
// (a form action or a selection change), saves the result and answers with
// either a full page or DataStar patches of the affected elements. Form
// posts without JavaScript are redirected back to the page that hosts the
// form, which then renders the saved state.
package dashboard
